package main

import (
	"log/slog"
	"os"

	"comanda/internal/config"
	"comanda/internal/server"
	"comanda/pkg/sl"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.New()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("failed to create server", sl.Err(err))
		os.Exit(1)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Error("server error", sl.Err(err))
		os.Exit(1)
	}
}
