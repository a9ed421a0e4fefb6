// internal/console/session.go
//
// Blocking console loop for a single Hangman game.
// Each turn: show progress, prompt, read one line, apply it to the game.
//   - Invalid input and repeated letters re-prompt without using a turn.
//   - Wrong guesses draw the next gallows stage.
//   - The loop ends when the game is won or lost, or input runs out.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/render"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("console: input closed before the game ended")

// maxLine is how much of an input line is kept; the rest is discarded.
// Anything that long is an invalid guess anyway.
const maxLine = 256

// Session reads guesses from one stream and writes the game to another.
type Session struct {
	in   *bufio.Reader
	view *render.Renderer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), view: render.New(out)}
}

type line struct {
	text string
	err  error
}

// Play runs g to completion and returns its final state.
// Cancelling ctx interrupts a pending read; Play then returns ctx.Err().
func (s *Session) Play(ctx context.Context, g *game.Game) (game.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan line)
	go s.readLines(ctx, lines)

	s.view.Welcome()
	for !g.Finished() {
		if err := ctx.Err(); err != nil {
			return g.State, err
		}
		s.view.Progress(g)
		s.view.Prompt()
		if err := s.view.Err(); err != nil {
			return g.State, fmt.Errorf("console: write: %w", err)
		}

		var in line
		select {
		case <-ctx.Done():
			return g.State, ctx.Err()
		case in = <-lines:
		}
		if in.err != nil {
			return g.State, in.err
		}

		outcome, err := g.Guess(strings.ToLower(in.text))
		var dup *game.AlreadyGuessedError
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			s.view.Invalid()
			continue
		case errors.As(err, &dup):
			s.view.AlreadyGuessed(dup.Guessed)
			continue
		case err != nil:
			return g.State, err
		}

		log.Debug().Str("gameId", g.ID).Str("letter", in.text).Str("outcome", string(outcome)).
			Int("wrong", g.Wrong).Msg("guess applied")

		if outcome == game.OutcomeCorrect {
			s.view.Correct()
		} else if err := s.view.Wrong(g.Wrong); err != nil {
			return g.State, err
		}
	}

	s.view.Final(g)
	if err := s.view.Err(); err != nil {
		return g.State, fmt.Errorf("console: write: %w", err)
	}
	return g.State, nil
}

// readLines feeds lines to out until a read fails or ctx is done.
// A read blocked on the underlying stream outlives ctx; it exits once the
// stream yields or closes.
func (s *Session) readLines(ctx context.Context, out chan<- line) {
	for {
		text, err := s.readLine()
		select {
		case out <- line{text: text, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// readLine returns the next line without its line ending, keeping at most
// maxLine bytes of it. A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	var buf []byte
	for {
		chunk, err := s.in.ReadSlice('\n')
		if room := maxLine - len(buf); room > 0 {
			buf = append(buf, chunk[:min(len(chunk), room)]...)
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(buf) == 0 {
				return "", ErrInputClosed
			}
		case err != nil:
			return "", fmt.Errorf("console: read guess: %w", err)
		}
		return strings.TrimRight(string(buf), "\r\n"), nil
	}
}
