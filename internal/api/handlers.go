package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/FocuswithJustin/RowanBible/internal/logging"
	"github.com/FocuswithJustin/RowanBible/internal/metrics"
)

// defaultSearchLimit caps snippet-search responses when the client
// does not pass limit.
const defaultSearchLimit = 25

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encoding response", "error", err)
	}
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: what + " not found"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"verses": s.engine.VerseCount(),
	})
}

// handleBooks returns the book list without chapter bodies; clients
// page into a book via /api/books/{id}.
func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	type bookSummary struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		NameEn   string `json:"nameEn"`
		Chapters int    `json:"chapters"`
	}
	books := s.engine.Books()
	out := make([]bookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, bookSummary{
			ID:       b.ID,
			Name:     b.Name,
			NameEn:   b.NameEn,
			Chapters: len(b.Chapters),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, ok := s.engine.GetBook(id)
	if !ok {
		writeNotFound(w, "book")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "chapter must be a number"})
		return
	}
	verse, err := strconv.Atoi(chi.URLParam(r, "verse"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "verse must be a number"})
		return
	}

	v, ok := s.engine.GetVerse(id, chapter, verse)
	if !ok {
		writeNotFound(w, "verse")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ref":    s.engine.FormatReference(id, chapter, verse),
		"verse":  v.Verse,
		"text":   v.Text,
		"textEn": v.TextEn,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive number"})
			return
		}
		limit = n
	}

	results := s.engine.SearchWithSnippets(query, limit)
	metrics.ObserveSearchResults(len(results))

	type hit struct {
		Ref     string  `json:"ref"`
		Book    string  `json:"bookNameEn"`
		Chapter int     `json:"chapter"`
		Verse   int     `json:"verse"`
		Text    string  `json:"text"`
		TextEn  string  `json:"textEn"`
		Score   float64 `json:"score"`
		Snippet string  `json:"snippet"`
	}
	out := make([]hit, 0, len(results))
	for _, res := range results {
		out = append(out, hit{
			Ref:     res.Entry.Ref,
			Book:    res.Entry.BookNameEn,
			Chapter: res.Entry.Chapter,
			Verse:   res.Entry.Verse,
			Text:    res.Entry.Text,
			TextEn:  res.Entry.TextEn,
			Score:   res.Score,
			Snippet: res.Snippet,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ref query parameter required"})
		return
	}
	entry, ok := s.engine.SearchByReference(ref)
	if !ok {
		writeNotFound(w, "reference")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.engine.RandomVerse(rand.New(rand.NewSource(rand.Int63())))
	if !ok {
		writeNotFound(w, "verse")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
