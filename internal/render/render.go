// Package render produces the player-facing text of a Hangman game:
// the banner, the masked word, the gallows stages and result messages.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNoStage is returned for wrong counts outside 1..game.MaxTries.
var ErrNoStage = errors.New("render: no gallows stage for wrong count")

const Banner = `
Welcome to the game Hangman
 _
| |
| |__   __ _ _ __   __ _ _ __ ___   __ _ _ __
| '_ \ / _` + "`" + ` | '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
| | | | (_| | | | | (_| | | | | | | (_| | | | |
|_| |_|\__,_|_| |_|\__, |_| |_| |_|\__,_|_| |_|
                    __/ |
                   |___/
`

// stages[i] is drawn after i+1 wrong attempts.
var stages = [game.MaxTries]string{
	`
         -----
        |     |
        |
        |
        |
        |
      -------`,
	`
         -----
        |     |
        |     O
        |
        |
        |
      -------`,
	`
         -----
        |     |
        |     O
        |     |
        |
        |
      -------`,
	`
         -----
        |     |
        |     O
        |    /|\
        |
        |
      -------`,
	`
         -----
        |     |
        |     O
        |    /|\
        |    /
        |
      -------`,
	`
         -----
        |     |
        |     O
        |    /|\
        |    / \
        |
      -------`,
}

// Stage returns the gallows drawing for wrong attempts.
func Stage(wrong int) (string, error) {
	if wrong < 1 || wrong > len(stages) {
		return "", fmt.Errorf("%w: %d", ErrNoStage, wrong)
	}
	return stages[wrong-1], nil
}

// Renderer writes game text to w. Write errors are sticky: after the
// first failure further output is dropped and Err reports it.
type Renderer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Renderer { return &Renderer{w: w} }

// Err returns the first write error, if any.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) Welcome() {
	r.printf("Welcome to Hangman!\n%s\n", Banner)
}

// Progress shows the masked word.
func (r *Renderer) Progress(g *game.Game) {
	r.printf("\nWord: %s\n\n\n", g.Masked())
}

func (r *Renderer) Prompt() {
	r.printf("Guess a letter: ")
}

// Invalid reports input that is not a single letter.
func (r *Renderer) Invalid() {
	r.printf("X\nInvalid input! Please enter a single alphabetical character.\n")
}

// AlreadyGuessed reports a repeated letter along with everything guessed so far.
func (r *Renderer) AlreadyGuessed(guessed []string) {
	r.printf("You already guessed this letter. Try again.\nX\n%s\n", strings.Join(guessed, " -> "))
}

func (r *Renderer) Correct() {
	r.printf("Correct guess!\n")
}

// Wrong reports a miss and draws the matching gallows stage.
func (r *Renderer) Wrong(wrong int) error {
	stage, err := Stage(wrong)
	if err != nil {
		return err
	}
	r.printf("Wrong guess!\n%s\n", stage)
	return nil
}

// Final prints the result line naming the secret word.
func (r *Renderer) Final(g *game.Game) {
	switch g.State {
	case game.StateWon:
		r.printf("\nCongratulations! You guessed the word: %s\n", g.Word)
	case game.StateLost:
		r.printf("\nSorry, you ran out of attempts. The word was: %s\n", g.Word)
	}
}
