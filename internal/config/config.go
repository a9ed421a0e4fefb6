// Package config loads Hangman settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/hangman/internal/words"
)

// Config is the full runtime configuration.
//
// WordsFile empty selects the embedded list; Pick is fixed, random or
// daily (Index is used by fixed, DailySalt by daily); ResultsDB empty
// disables the results ledger.
type Config struct {
	WordsFile    string `env:"HANGMAN_WORDS_FILE"`
	Pick         string `env:"HANGMAN_PICK" envDefault:"fixed"`
	Index        int    `env:"HANGMAN_INDEX" envDefault:"1"`
	DailySalt    string `env:"HANGMAN_DAILY_SALT" envDefault:"local_dev_salt"`
	ResultsDB    string `env:"HANGMAN_RESULTS_DB"`
	Addr         string `env:"HANGMAN_ADDR" envDefault:":5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Pick {
	case words.PickFixed, words.PickRandom, words.PickDaily:
		return nil
	default:
		return fmt.Errorf("config: HANGMAN_PICK must be fixed, random or daily, got %q", c.Pick)
	}
}

// IndexSource returns the selection index source named by Pick.
func (c Config) IndexSource() (words.IndexSource, error) {
	return words.NewIndexSource(c.Pick, c.Index, c.DailySalt)
}

// WordList loads WordsFile, or the embedded list when it is unset.
// An empty list is a configuration error.
func (c Config) WordList() (words.List, error) {
	var (
		l   words.List
		err error
	)
	if c.WordsFile != "" {
		l, err = words.Load(c.WordsFile)
	} else {
		l, err = words.Default()
	}
	if err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, fmt.Errorf("config: %w", words.ErrEmptyList)
	}
	return l, nil
}
