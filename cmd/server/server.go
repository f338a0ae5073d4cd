package main

import (
	"context"
	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mirrorfield/config"
	"github.com/zucenko/mirrorfield/server"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

type Server struct {
	router       *chi.Mux
	config       *config.Config
	CipherServer *server.CipherServer
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("MIRRORFIELD_CONFIG")
	if path == "" {
		log.Printf("No MIRRORFIELD_CONFIG, using defaults")
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	cs, err := server.Load(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	Server := Server{
		config:       cfg,
		CipherServer: cs,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go Server.CipherServer.Loop(ctx)
	Server.routes()

	addr := cfg.Server.Listen
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	srv := &http.Server{Addr: addr, Handler: Server.handler()}
	go func() {
		<-ctx.Done()
		log.Printf("Shutting down")
		srv.Shutdown(context.Background())
	}()
	log.WithField("addr", addr).Info("Listening")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}
