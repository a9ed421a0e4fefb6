package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/results"
	"github.com/robalobadob/hangman/internal/store"
)

const usage = `usage: hangman [play|serve]

  play   play one game in the terminal (default)
  serve  run the JSON API on HANGMAN_ADDR
`

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("hangman exited")
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	mode := "play"
	if len(args) > 0 {
		mode = args[0]
	}
	if mode != "play" && mode != "serve" {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", mode)
	}

	list, err := cfg.WordList()
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	idx, err := cfg.IndexSource()
	if err != nil {
		return err
	}
	log.Debug().Int("words", len(list)).Str("pick", cfg.Pick).Msg("word list loaded")

	var ledger *results.Store
	if cfg.ResultsDB != "" {
		if ledger, err = results.Open(cfg.ResultsDB); err != nil {
			return err
		}
		defer ledger.Close()
	}

	if mode == "serve" {
		srv := httpserver.New(store.NewMemoryStore(), httpserver.Options{
			Words:        list,
			Index:        idx,
			Ledger:       ledger,
			ClientOrigin: cfg.ClientOrigin,
		})
		log.Info().Str("addr", cfg.Addr).Msg("starting hangman server")
		return srv.Start(cfg.Addr)
	}

	word, err := list.Pick(idx.Index(len(list)))
	if err != nil {
		return err
	}
	g, err := game.New(word)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := console.NewSession(os.Stdin, os.Stdout).Play(ctx, g)
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		log.Warn().Str("gameId", g.ID).Msg("game abandoned")
		return nil
	}
	if err != nil {
		return err
	}
	log.Debug().Str("gameId", g.ID).Str("state", string(state)).Int("wrong", g.Wrong).Msg("game finished")

	if ledger != nil {
		if err := ledger.Record(ctx, results.FromGame(g)); err != nil {
			log.Warn().Err(err).Msg("record result")
		}
	}
	return nil
}

// setupLogging writes human-readable logs to a terminal and JSON otherwise.
// Logs always go to stderr so they never interleave with the game on stdout.
func setupLogging(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
