package main

func (s *Server) routes() {
	s.router = s.SetupServer.Router()
}
