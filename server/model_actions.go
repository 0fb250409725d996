package server

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/onitama/model"
)

func NewSetupServer(seeds SeedSource, logger *log.Logger) *SetupServer {
	if seeds == nil {
		seeds = ClockSeed
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &SetupServer{
		Seeds:    seeds,
		Upgrader: &websocket.Upgrader{},
		Log:      logger,
		Timeout:  time.Second,
	}
}

// Deal builds the setup for seed. Each call owns its own generator.
func Deal(seed int64) model.Setup {
	r := rand.New(rand.NewSource(seed))
	return model.NewSetup(seed, model.DealHand(r), model.StartingBoard())
}

func (s *SetupServer) seed(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return s.Seeds(), true
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.Log.WithField("seed", raw).Warn("setup request with invalid seed")
		return 0, false
	}
	return seed, true
}

// HandleSetup answers GET /setup[?seed=N] with a freshly dealt match.
func (s *SetupServer) HandleSetup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seed, ok := s.seed(r)
		if !ok {
			s.writeError(w, SEED_INVALID, "seed must be an integer")
			return
		}
		setup := Deal(seed)
		s.Log.WithFields(log.Fields{"seed": seed, "hand": setup.Hand}).Debug("HandleSetup dealt")
		s.writeJSON(w, SETUP_READY, setup)
	}
}

func (s *SetupServer) HandleCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards := make([]model.CardInfo, 0, model.NumCards)
		for _, c := range model.AllCards() {
			cards = append(cards, model.NewCardInfo(c))
		}
		s.writeJSON(w, SETUP_READY, cards)
	}
}

// HandleCard answers GET /cards/:card.
func (s *SetupServer) HandleCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := model.ParseCard(way.Param(r.Context(), "card"))
		if err != nil {
			s.writeError(w, CARD_NOT_FOUND, err.Error())
			return
		}
		s.writeJSON(w, SETUP_READY, model.NewCardInfo(c))
	}
}

// HandleSetupStream upgrades to a websocket, sends one setup and closes.
func (s *SetupServer) HandleSetupStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seed, ok := s.seed(r)
		if !ok {
			s.writeError(w, SEED_INVALID, "seed must be an integer")
			return
		}
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client.
			s.Log.Warnf("HandleSetupStream websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		if err := con.SetWriteDeadline(time.Now().Add(s.Timeout)); err != nil {
			s.Log.Warnf("HandleSetupStream cant set write deadline %v", err)
			return
		}
		if err := con.WriteJSON(Deal(seed)); err != nil {
			s.Log.Warnf("HandleSetupStream cant write setup %v", err)
			return
		}
		err = con.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(s.Timeout))
		if err != nil && err != websocket.ErrCloseSent {
			s.Log.Warnf("HandleSetupStream cant close %v", err)
		}
		s.Log.WithField("seed", seed).Info("HandleSetupStream setup sent")
	}
}

func (s *SetupServer) writeJSON(w http.ResponseWriter, code ResponseCode, v interface{}) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(v); err != nil {
		s.Log.Errorf("writeJSON encode err %v", err)
		code = SETUP_FAILED
		body.Reset()
		// ErrorResponse holds only strings and always encodes.
		json.NewEncoder(&body).Encode(ErrorResponse{Code: code.Name(), Error: "response could not be encoded"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.ToHttp())
	if _, err := w.Write(body.Bytes()); err != nil {
		s.Log.Warnf("writeJSON write err %v", err)
	}
}

func (s *SetupServer) writeError(w http.ResponseWriter, code ResponseCode, msg string) {
	s.writeJSON(w, code, ErrorResponse{Code: code.Name(), Error: msg})
}
