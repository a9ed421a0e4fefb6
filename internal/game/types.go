// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State:   lifecycle of a single game (in progress, won, lost).
//   - Outcome: per-guess result (correct or wrong).
//   - Game:    state for a single in-progress or finished game.

package game

import "time"

// MaxTries is the number of wrong attempts that ends a game.
const MaxTries = 6

// State is the coarse lifecycle of a game.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Outcome is the evaluation of a single accepted guess.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

// Game holds the state of a single Hangman game session.
type Game struct {
	ID         string    // Unique game identifier (random hex string).
	Word       string    // The secret word, case preserved.
	Guessed    LetterSet // Every accepted guess, correct or wrong (lowercase).
	Wrong      int       // Wrong attempts so far, 0..MaxTries.
	State      State     // in_progress | won | lost
	StartedAt  time.Time // Creation time (UTC).
	FinishedAt time.Time // Zero until the game is won or lost.
}
