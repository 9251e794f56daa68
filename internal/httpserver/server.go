// internal/httpserver/server.go
//
// HTTP server exposing a lexicon.Source, so several game consoles can share
// one lexical database.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoint: GET /health.
//   - Lexicon endpoints (bearer auth when a secret is set):
//       GET /words/random?min=&max=&pos=   → {"word": "..."}
//       GET /senses/{token}                → {"senses": [...]}
//
// Notes:
//   - lexicon.ErrNoCandidates maps to 404; other source errors to 500.
//   - Missing/invalid query parameters are 400s.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/lexicon"
)

// Server bundles the router and the lexicon it serves.
type Server struct {
	r      *chi.Mux
	src    lexicon.Source
	secret []byte
}

// New constructs a Server, installs middleware, and registers routes.
// An empty secret disables bearer auth.
func New(src lexicon.Source, secret string) *Server {
	s := &Server{r: chi.NewRouter(), src: src}
	if secret != "" {
		s.secret = []byte(secret)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- lexicon ---
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAuth())
		r.Get("/words/random", s.handleRandomWord)
		r.Get("/senses/{token}", s.handleSenses)
	})

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

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ LEXICON ------------------------------------

// handleRandomWord serves GET /words/random.
func (s *Server) handleRandomWord(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minLen, err1 := strconv.Atoi(q.Get("min"))
	maxLen, err2 := strconv.Atoi(q.Get("max"))
	if err1 != nil || err2 != nil || minLen < 1 || maxLen < minLen {
		writeError(w, http.StatusBadRequest, "invalid_length")
		return
	}

	var pos []lexicon.PartOfSpeech
	for _, p := range q["pos"] {
		pp, err := lexicon.ParsePartOfSpeech(p)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_pos")
			return
		}
		pos = append(pos, pp)
	}

	word, err := s.src.RandomWord(r.Context(), minLen, maxLen, pos)
	if errors.Is(err, lexicon.ErrNoCandidates) {
		writeError(w, http.StatusNotFound, "no_candidates")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("random word")
		writeError(w, http.StatusInternalServerError, "lexicon_error")
		return
	}
	_ = json.NewEncoder(w).Encode(lexicon.RandomWordResponse{Word: word})
}

// handleSenses serves GET /senses/{token}.
func (s *Server) handleSenses(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	senses, err := s.src.Senses(r.Context(), token)
	if err != nil {
		log.Error().Err(err).Str("token", token).Msg("senses")
		writeError(w, http.StatusInternalServerError, "lexicon_error")
		return
	}
	if senses == nil {
		senses = []lexicon.Sense{}
	}
	_ = json.NewEncoder(w).Encode(lexicon.SensesResponse{Senses: senses})
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
