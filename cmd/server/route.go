package main

import (
	"github.com/go-chi/chi"
	"github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/server"
	"net/http"
)

const URI_WS = "/crypt"

func (s *Server) routes() {
	s.router = chi.NewRouter()
	s.router.Get(URI_WS, s.CipherServer.HandleHttpCall())
	s.router.Method(http.MethodGet, s.config.Server.Metrics, server.MetricsHandler())
}

func (s *Server) handler() http.Handler {
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger()))
	return handlers.CombinedLoggingHandler(log.StandardLogger().Writer(), recovery(s.router))
}
