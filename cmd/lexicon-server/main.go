// Command lexicon-server shares one lexicon database with hangman clients
// over HTTP.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/cryptorand"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/lexicon"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level(zerolog.InfoLevel))

	if cfg.LexiconSecret == "" {
		log.Warn().Msg("LEXICON_SECRET not set; serving without auth")
	}

	src, err := lexicon.Open(context.Background(), cfg.LexiconPath, cryptorand.New())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LexiconPath).Msg("failed to open lexicon")
	}
	defer src.Close()

	srv := httpserver.New(src, cfg.LexiconSecret)
	log.Info().Str("addr", cfg.Addr).Msg("starting lexicon-server")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
