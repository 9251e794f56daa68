// Command hangman plays one round of Hangman on the terminal.
//
// The target word comes from the local lexicon database (LEXICON_DB), or from
// a lexicon server when LEXICON_URL is set. With DAILY_SALT set, the word is
// the word of the day for the current UTC date. Diagnostics go to stderr through
// zerolog; the game itself only writes to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/cryptorand"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/lexicon"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level(zerolog.WarnLevel))

	// Interrupt cancels the game, including a prompt waiting for input.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		stop() // a second interrupt terminates the process outright
	}()

	var rnd lexicon.Rand = cryptorand.New()
	if cfg.Daily() {
		rnd = daily.NewRand(time.Now(), cfg.DailySalt)
		if cfg.Remote() {
			log.Warn().Msg("DAILY_SALT only fixes the sense pick with a remote lexicon")
		}
	}

	src, closeSrc, err := openSource(ctx, cfg, rnd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "The word database is unavailable: %v\n", err)
		log.Fatal().Err(err).Msg("lexicon unavailable")
	}
	defer closeSrc()

	sense, err := words.NewSelector(src, rnd).ChooseWord(ctx)
	if err != nil {
		closeSrc()
		log.Fatal().Err(err).Msg("failed to choose a word")
	}

	term := console.New(os.Stdin, os.Stdout)
	if _, err := session.New(term, sense).Run(ctx); err != nil {
		closeSrc()
		switch {
		case errors.Is(err, console.ErrInputClosed):
			os.Exit(1)
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(os.Stdout)
			os.Exit(130)
		}
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// openSource returns the configured lexicon and a func releasing it.
func openSource(ctx context.Context, cfg *config.Config, rnd lexicon.Rand) (lexicon.Source, func(), error) {
	if cfg.Remote() {
		rc := lexicon.NewRemote(cfg.LexiconURL, cfg.LexiconSecret, nil)
		if err := rc.Ping(ctx); err != nil {
			return nil, nil, err
		}
		log.Debug().Str("url", cfg.LexiconURL).Msg("using remote lexicon")
		return rc, func() {}, nil
	}

	db, err := lexicon.Open(ctx, cfg.LexiconPath, rnd)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("path", cfg.LexiconPath).Msg("using local lexicon")
	return db, func() { _ = db.Close() }, nil
}
