package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: err = %v", err)
	}
	if err := st.Update(ctx, "missing", func(*game.Game) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: err = %v", err)
	}

	g, _ := game.New("cat")
	if err := st.Save(ctx, g); err != nil {
		t.Fatal(err)
	}
	if err := st.Update(ctx, g.ID, func(g *game.Game) error {
		_, err := g.Guess("x")
		return err
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := st.Get(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Wrong != 1 {
		t.Fatalf("wrong = %d, want 1", got.Wrong)
	}
}

func TestMemoryStoreConcurrentGuesses(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g, _ := game.New("cat")
	_ = st.Save(ctx, g)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Update(ctx, g.ID, func(g *game.Game) error {
				_, err := g.Guess("x")
				return err
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if accepted != 1 {
		t.Fatalf("accepted = %d, want exactly 1", accepted)
	}
}

func TestMemoryGetIsSnapshot(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g, _ := game.New("cat")
	_ = st.Save(ctx, g)

	snap, err := st.Get(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := snap.Guess("c"); err != nil {
		t.Fatal(err)
	}
	if g.Guessed.Has('c') || g.Masked() != "_ _ _" {
		t.Fatalf("stored game changed through snapshot: %q", g.Masked())
	}

	if err := st.Update(ctx, g.ID, func(g *game.Game) error {
		_, err := g.Guess("a")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if snap.Guessed.Has('a') {
		t.Fatal("snapshot changed after update")
	}
}
