package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/onitama/config"
	"github.com/zucenko/onitama/model"
	"github.com/zucenko/onitama/server"
)

type Server struct {
	router      *way.Router
	SetupServer *server.SetupServer
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	printOnly := flag.Bool("print", false, "print one dealt setup and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.Level())

	seeds := server.SeedSource(server.ClockSeed)
	if cfg.Seed != nil {
		seeds = server.FixedSeed(*cfg.Seed)
		log.Infof("Dealing from fixed seed %d", *cfg.Seed)
	}

	if *printOnly {
		printSetup(os.Stdout, seeds())
		return
	}

	s := Server{
		SetupServer: server.NewSetupServer(seeds, log.StandardLogger()),
	}
	s.routes()
	log.Infof("Listening on port %s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, s.router))
}

func printSetup(w io.Writer, seed int64) {
	setup := server.Deal(seed)
	fmt.Fprintf(w, "Seed: %d\n", setup.Seed)
	fmt.Fprintf(w, "Blue: %v  Red: %v  Side: %s\n", setup.Blue, setup.Red, setup.Side)
	for _, card := range setup.Hand {
		fmt.Fprintf(w, "Moves for %s are:", card.Name)
		for _, m := range card.Moves {
			fmt.Fprintf(w, " %s(%+d,%+d)", m.Name, m.Offset.Row, m.Offset.Col)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, model.StartingBoard())
}
