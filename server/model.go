package server

import (
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// SeedSource picks the seed for a setup request that did not name one.
type SeedSource func() int64

// FixedSeed always deals from the same seed.
func FixedSeed(seed int64) SeedSource {
	return func() int64 { return seed }
}

// ClockSeed seeds from the current time.
func ClockSeed() int64 {
	return time.Now().UnixNano()
}

type SetupServer struct {
	Seeds    SeedSource
	Upgrader *websocket.Upgrader
	Log      *log.Logger
	Timeout  time.Duration
}
