// internal/game/engine.go
//
// Core game engine for a single Hangman session.
// Responsibilities:
//   - Create new games around a secret word.
//   - Validate guesses (exactly one letter, any script).
//   - Apply guesses: record the letter, count wrong attempts.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Letters are compared case-insensitively; the secret keeps its case for display.
//   - Input and words are NFC-normalized so a composed and a decomposed "é" are the same letter.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyWord      = errors.New("secret word is empty")
	ErrNotLetters     = errors.New("secret word must contain only letters")
	ErrInvalidGuess   = errors.New("invalid guess: enter a single letter")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrGameOver       = errors.New("game finished")
)

// AlreadyGuessedError is returned when a letter is guessed twice.
// It carries the letters guessed so far, sorted, for display.
type AlreadyGuessedError struct {
	Letter  string
	Guessed []string
}

func (e *AlreadyGuessedError) Error() string {
	return fmt.Sprintf("letter %q already guessed", e.Letter)
}

func (e *AlreadyGuessedError) Unwrap() error { return ErrAlreadyGuessed }

// New constructs a game around word.
// Every character of word must be a letter, otherwise the game could
// never be won.
func New(word string) (*Game, error) {
	word = norm.NFC.String(strings.TrimSpace(word))
	if word == "" {
		return nil, ErrEmptyWord
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q", ErrNotLetters, word)
		}
	}
	return &Game{
		ID:        randomID(),
		Word:      word,
		State:     StateInProgress,
		StartedAt: time.Now().UTC(),
	}, nil
}

// Guess validates and applies a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Input must be exactly one letter.
//   - Letter must not have been guessed before.
//
// Rejected guesses leave the game untouched. An accepted guess is added to
// Guessed; if it is not in the word Wrong is incremented. Afterwards the
// game is won when every letter of the word is guessed, or lost when Wrong
// reaches MaxTries.
func (g *Game) Guess(input string) (Outcome, error) {
	if g.Finished() {
		return "", ErrGameOver
	}
	r, err := NormalizeGuess(input)
	if err != nil {
		return "", err
	}
	if !g.Guessed.Add(r) {
		return "", &AlreadyGuessedError{Letter: string(r), Guessed: g.Guessed.Sorted()}
	}

	outcome := OutcomeCorrect
	if !containsLetter(g.Word, r) {
		outcome = OutcomeWrong
		g.Wrong++
	}

	if CheckWin(g.Word, g.Guessed) {
		g.finish(StateWon)
	} else if g.Wrong >= MaxTries {
		g.finish(StateLost)
	}
	return outcome, nil
}

// Clone returns a copy of g that shares no state with it.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Guessed = g.Guessed.Clone()
	return &cp
}

// Finished reports whether the game has been won or lost.
func (g *Game) Finished() bool { return g.State == StateWon || g.State == StateLost }

// TriesLeft is the number of wrong attempts still allowed.
func (g *Game) TriesLeft() int { return MaxTries - g.Wrong }

// Masked is the word as the player currently sees it.
func (g *Game) Masked() string { return Reveal(g.Word, g.Guessed) }

func (g *Game) finish(s State) {
	g.State = s
	g.FinishedAt = time.Now().UTC()
}

// NormalizeGuess returns the lowercase letter held by input,
// or ErrInvalidGuess if input is not exactly one letter.
func NormalizeGuess(input string) (rune, error) {
	s := norm.NFC.String(input)
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidGuess
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, ErrInvalidGuess
	}
	return unicode.ToLower(r), nil
}

// ValidateGuess returns ErrInvalidGuess unless input is a single letter.
func ValidateGuess(input string) error {
	_, err := NormalizeGuess(input)
	return err
}

// IsValidGuess reports whether input is a single letter.
func IsValidGuess(input string) bool { return ValidateGuess(input) == nil }

// RecordGuess adds letter to guessed and reports whether it was accepted.
// Invalid and repeated letters are rejected and leave guessed untouched.
func RecordGuess(letter string, guessed *LetterSet) bool {
	r, err := NormalizeGuess(letter)
	if err != nil {
		return false
	}
	return guessed.Add(r)
}

// Reveal shows each character of word that has been guessed and an
// underscore for the rest, separated by single spaces.
func Reveal(word string, guessed LetterSet) string {
	tokens := make([]string, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		if guessed.Has(unicode.ToLower(r)) {
			tokens = append(tokens, string(r))
		} else {
			tokens = append(tokens, "_")
		}
	}
	return strings.Join(tokens, " ")
}

// CheckWin reports whether every character of word has been guessed.
func CheckWin(word string, guessed LetterSet) bool {
	for _, r := range word {
		if !guessed.Has(unicode.ToLower(r)) {
			return false
		}
	}
	return true
}

// containsLetter reports whether lowercase letter l occurs in word, ignoring case.
func containsLetter(word string, l rune) bool {
	for _, r := range word {
		if unicode.ToLower(r) == l {
			return true
		}
	}
	return false
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
