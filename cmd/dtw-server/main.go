package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/askiada/go-dtw/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	addr := flag.String("addr", "", "listen address, overrides the config file")
	flag.Parse()

	logger := log.New(os.Stderr, "dtw-server: ", log.LstdFlags)

	cfg := server.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = server.LoadConfig(*configPath)
		if err != nil {
			logger.Fatalf("cannot load config: %v", err)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	srv := server.New(cfg, logger)
	logger.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
