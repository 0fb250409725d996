package server

import "github.com/matryer/way"

const URI_SETUP = "/setup"
const URI_SETUP_WS = "/setup/ws"
const URI_CARDS = "/cards"
const URI_CARD = "/cards/:card"

func (s *SetupServer) Router() *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_SETUP, s.HandleSetup())
	router.HandleFunc("GET", URI_SETUP_WS, s.HandleSetupStream())
	router.HandleFunc("GET", URI_CARDS, s.HandleCards())
	router.HandleFunc("GET", URI_CARD, s.HandleCard())
	return router
}
