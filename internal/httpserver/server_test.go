package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/results"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func newTestServer(t *testing.T, ledger *results.Store) *Server {
	t.Helper()
	return New(store.NewMemoryStore(), Options{
		Words:  words.List{"cat", "dog"},
		Index:  words.Fixed(0),
		Ledger: ledger,
	})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func guess(t *testing.T, s *Server, id, letter string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","letter":"`+letter+`"}`)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestGameFlowWin(t *testing.T) {
	ledger, err := results.Open(filepath.Join(t.TempDir(), "hangman.db"))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { _ = ledger.Close() })
	s := newTestServer(t, ledger)

	rec := do(t, s, http.MethodPost, "/game/new", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("new: status %d: %s", rec.Code, rec.Body)
	}
	ng := decode[newGameRes](t, rec)
	if ng.Masked != "_ _ _" || ng.Length != 3 || ng.MaxTries != game.MaxTries {
		t.Fatalf("new game = %+v", ng)
	}

	rec = guess(t, s, ng.GameID, "x")
	gr := decode[guessRes](t, rec)
	if gr.Outcome != game.OutcomeWrong || gr.Stage == "" || gr.TriesLeft != game.MaxTries-1 {
		t.Fatalf("wrong guess = %+v", gr)
	}
	if gr.Word != "" {
		t.Fatal("word leaked before game end")
	}

	if rec := guess(t, s, ng.GameID, "x"); rec.Code != http.StatusConflict {
		t.Fatalf("repeat: status %d", rec.Code)
	}
	if rec := guess(t, s, ng.GameID, "ab"); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid: status %d", rec.Code)
	}

	guess(t, s, ng.GameID, "c")
	guess(t, s, ng.GameID, "a")
	gr = decode[guessRes](t, guess(t, s, ng.GameID, "T"))
	if gr.State != game.StateWon || gr.Word != "cat" || gr.Masked != "c a t" {
		t.Fatalf("final guess = %+v", gr)
	}

	if rec := guess(t, s, ng.GameID, "z"); rec.Code != http.StatusConflict {
		t.Fatalf("after finish: status %d", rec.Code)
	}

	sum, err := ledger.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Played != 1 || sum.Won != 1 {
		t.Fatalf("ledger summary = %+v", sum)
	}

	rec = do(t, s, http.MethodGet, "/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status %d", rec.Code)
	}
	if got := decode[results.Summary](t, rec); got.Streak != 1 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestNewGameExplicitIndex(t *testing.T) {
	s := newTestServer(t, nil)
	ng := decode[newGameRes](t, do(t, s, http.MethodPost, "/game/new", `{"index":3}`))
	gr := decode[guessRes](t, guess(t, s, ng.GameID, "d"))
	if gr.Masked != "d _ _" {
		t.Fatalf("expected dog, masked = %q", gr.Masked)
	}
}

func TestGuessUnknownGame(t *testing.T) {
	if rec := guess(t, newTestServer(t, nil), "nope", "a"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestStatsDisabled(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/stats/recent", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "stats_disabled") {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
}

func TestNewGameBody(t *testing.T) {
	s := newTestServer(t, nil)
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty", "", http.StatusOK},
		{"object", `{}`, http.StatusOK},
		{"wrong type", `{"index":"x"}`, http.StatusBadRequest},
		{"truncated", `{"index":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/game/new", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
			if tt.want == http.StatusBadRequest {
				if e := decode[map[string]string](t, rec); e["error"] != "bad_json" {
					t.Fatalf("error = %q", e["error"])
				}
			}
		})
	}
}

func TestRecentHugeLimit(t *testing.T) {
	ledger, err := results.Open(filepath.Join(t.TempDir(), "hangman.db"))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { _ = ledger.Close() })
	s := newTestServer(t, ledger)

	rec := do(t, s, http.MethodGet, "/stats/recent?limit=1000000000000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}
