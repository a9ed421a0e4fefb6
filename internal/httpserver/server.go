// internal/httpserver/server.go
//
// HTTP server wiring for `hangman serve`.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess.
//   - Ledger endpoints under /stats when a results database is configured.
//
// Notes:
//   - Games live in the in-memory store; only finished games reach the ledger.
//   - The secret word is only sent back once the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/render"
	"github.com/robalobadob/hangman/internal/results"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Options carries the server's dependencies.
type Options struct {
	Words        words.List
	Index        words.IndexSource
	Ledger       *results.Store // nil disables /stats
	ClientOrigin string
}

// Server bundles router, in-memory game store and word selection.
type Server struct {
	r     *chi.Mux
	store store.Store
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	if opts.Index == nil {
		opts.Index = words.Random{}
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman","endpoints":["/health","POST /game/new","POST /game/guess","/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)

	s.mountStats(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Index *int `json:"index"` // optional; otherwise the configured source decides
}

type newGameRes struct {
	GameID   string `json:"gameId"`
	Masked   string `json:"masked"`
	Length   int    `json:"length"`
	MaxTries int    `json:"maxTries"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	idx := s.opts.Index.Index(len(s.opts.Words))
	if req.Index != nil {
		idx = *req.Index
	}
	word, err := s.opts.Words.Pick(idx)
	if err != nil {
		log.Error().Err(err).Msg("pick word")
		writeError(w, http.StatusInternalServerError, "no_words")
		return
	}
	g, err := game.New(word)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "bad_word")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Int("index", idx).Msg("game started")

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:   g.ID,
		Masked:   g.Masked(),
		Length:   utf8.RuneCountInString(g.Word),
		MaxTries: game.MaxTries,
	})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

type guessRes struct {
	Outcome   game.Outcome `json:"outcome"`
	Masked    string       `json:"masked"`
	State     game.State   `json:"state"`
	Wrong     int          `json:"wrong"`
	TriesLeft int          `json:"triesLeft"`
	Guessed   []string     `json:"guessed"`
	Stage     string       `json:"stage,omitempty"` // gallows drawing after a wrong guess
	Word      string       `json:"word,omitempty"`  // revealed once the game is over
}

// handleGuess applies a letter to a stored game and, when the guess ends
// the game, records it in the ledger (best effort).
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		res      guessRes
		finished *game.Game
	)
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		outcome, err := g.Guess(req.Letter)
		if err != nil {
			return err
		}
		res = guessRes{
			Outcome:   outcome,
			Masked:    g.Masked(),
			State:     g.State,
			Wrong:     g.Wrong,
			TriesLeft: g.TriesLeft(),
			Guessed:   g.Guessed.Sorted(),
		}
		if outcome == game.OutcomeWrong {
			res.Stage, _ = render.Stage(g.Wrong)
		}
		if g.Finished() {
			res.Word = g.Word
			finished = g.Clone()
		}
		return nil
	})

	var dup *game.AlreadyGuessedError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case errors.As(err, &dup):
		writeJSON(w, http.StatusConflict, map[string]any{"error": "already_guessed", "guessed": dup.Guessed})
		return
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if finished != nil {
		log.Info().Str("gameId", finished.ID).Str("state", string(finished.State)).
			Int("wrong", finished.Wrong).Msg("game finished")
		if s.opts.Ledger != nil {
			if err := s.opts.Ledger.Record(r.Context(), results.FromGame(finished)); err != nil {
				log.Warn().Err(err).Str("gameId", finished.ID).Msg("record result")
			}
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
