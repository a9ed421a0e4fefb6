package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func TestStageRange(t *testing.T) {
	for _, n := range []int{-1, 0, game.MaxTries + 1} {
		if _, err := Stage(n); !errors.Is(err, ErrNoStage) {
			t.Fatalf("Stage(%d) err = %v, want ErrNoStage", n, err)
		}
	}
	prev := ""
	for n := 1; n <= game.MaxTries; n++ {
		s, err := Stage(n)
		if err != nil {
			t.Fatalf("Stage(%d): %v", n, err)
		}
		if s == prev {
			t.Fatalf("Stage(%d) repeats the previous drawing", n)
		}
		prev = s
	}
}

func TestRendererMessages(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.AlreadyGuessed([]string{"a", "c", "x"})
	r.Invalid()
	if err := r.Wrong(0); !errors.Is(err, ErrNoStage) {
		t.Fatalf("Wrong(0) err = %v", err)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected write error: %v", r.Err())
	}

	out := buf.String()
	for _, want := range []string{"a -> c -> x", "X\nInvalid input!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRendererFinal(t *testing.T) {
	g, _ := game.New("cat")
	for _, l := range []string{"c", "a", "t"} {
		_, _ = g.Guess(l)
	}
	var buf bytes.Buffer
	New(&buf).Final(g)
	if !strings.Contains(buf.String(), "You guessed the word: cat") {
		t.Fatalf("final = %q", buf.String())
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("closed")
}

func TestRendererStickyError(t *testing.T) {
	fw := &failWriter{}
	r := New(fw)
	r.Prompt()
	r.Prompt()
	if r.Err() == nil {
		t.Fatal("expected write error")
	}
	if fw.n != 1 {
		t.Fatalf("writes after failure: %d", fw.n)
	}
}

func TestBannerLettering(t *testing.T) {
	const row = "| '_ \\ / _` | '_ \\ / _` | '_ ` _ \\ / _` | '_ \\"
	if !strings.Contains(Banner, row) {
		t.Fatalf("banner is missing the lettering row %q:\n%s", row, Banner)
	}
	if n := strings.Count(Banner, "`"); n != 4 {
		t.Fatalf("banner has %d backticks, want 4", n)
	}
}
