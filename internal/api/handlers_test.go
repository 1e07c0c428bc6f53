package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
	"github.com/FocuswithJustin/RowanBible/core/search"
)

func testServer() *Server {
	c := &corpus.Corpus{
		Books: []corpus.Book{
			{
				ID: "psalms", Name: "诗篇", NameEn: "Psalms",
				Chapters: []corpus.Chapter{
					{Chapter: 23, Verses: []corpus.Verse{
						{Verse: 1, Text: "耶和华是我的牧者，我必不至缺乏。", TextEn: "The LORD is my shepherd; I shall not want."},
					}},
				},
			},
			{
				ID: "john", Name: "约翰福音", NameEn: "John",
				Chapters: []corpus.Chapter{
					{Chapter: 3, Verses: []corpus.Verse{
						{Verse: 16, Text: "神爱世人。", TextEn: "For God so loved the world."},
					}},
				},
			},
		},
	}
	return New(search.NewEngine(c), Config{Port: 0})
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Status string `json:"status"`
		Verses int    `json:"verses"`
	}
	decodeBody(t, rec, &body)
	if body.Status != "ok" || body.Verses != 2 {
		t.Errorf("body = %+v", body)
	}
}

func TestBooksEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(), "/api/books")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var books []struct {
		ID       string `json:"id"`
		NameEn   string `json:"nameEn"`
		Chapters int    `json:"chapters"`
	}
	decodeBody(t, rec, &books)
	if len(books) != 2 {
		t.Fatalf("got %d books", len(books))
	}
	if books[0].ID != "psalms" || books[0].Chapters != 1 {
		t.Errorf("first book = %+v", books[0])
	}
}

func TestBookEndpoint(t *testing.T) {
	s := testServer()

	rec := doRequest(t, s, "/api/books/john")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var book corpus.Book
	decodeBody(t, rec, &book)
	if book.NameEn != "John" || len(book.Chapters) != 1 {
		t.Errorf("book = %+v", book)
	}

	if rec := doRequest(t, s, "/api/books/tobit"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown book status = %d, want 404", rec.Code)
	}
}

func TestVerseEndpoint(t *testing.T) {
	s := testServer()

	rec := doRequest(t, s, "/api/verse/john/3/16")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Ref    string `json:"ref"`
		TextEn string `json:"textEn"`
	}
	decodeBody(t, rec, &body)
	if body.Ref != "John 3:16" || body.TextEn == "" {
		t.Errorf("body = %+v", body)
	}

	if rec := doRequest(t, s, "/api/verse/john/3/17"); rec.Code != http.StatusNotFound {
		t.Errorf("missing verse status = %d, want 404", rec.Code)
	}
	if rec := doRequest(t, s, "/api/verse/john/three/16"); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric chapter status = %d, want 400", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	s := testServer()

	rec := doRequest(t, s, "/api/search?q=shepherd")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var hits []struct {
		Ref     string  `json:"ref"`
		Score   float64 `json:"score"`
		Snippet string  `json:"snippet"`
	}
	decodeBody(t, rec, &hits)
	if len(hits) != 1 {
		t.Fatalf("got %d hits", len(hits))
	}
	if hits[0].Ref != "psalms:23:1" || hits[0].Score != 0.5 {
		t.Errorf("hit = %+v", hits[0])
	}
	if hits[0].Snippet == "" {
		t.Error("hit has no snippet")
	}
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	rec := doRequest(t, testServer(), "/api/search?q=")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var hits []json.RawMessage
	decodeBody(t, rec, &hits)
	if len(hits) != 0 {
		t.Errorf("empty query should return an empty list, got %d", len(hits))
	}
}

func TestSearchEndpointBadLimit(t *testing.T) {
	s := testServer()
	for _, path := range []string{"/api/search?q=god&limit=abc", "/api/search?q=god&limit=0", "/api/search?q=god&limit=-1"} {
		if rec := doRequest(t, s, path); rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", path, rec.Code)
		}
	}
}

func TestReferenceEndpoint(t *testing.T) {
	s := testServer()

	rec := doRequest(t, s, "/api/reference?ref=John+3:16")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var entry corpus.IndexEntry
	decodeBody(t, rec, &entry)
	if entry.Ref != "john:3:16" {
		t.Errorf("entry = %+v", entry)
	}

	if rec := doRequest(t, s, "/api/reference?ref=Tobit+1:1"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown reference status = %d, want 404", rec.Code)
	}
	if rec := doRequest(t, s, "/api/reference"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing ref status = %d, want 400", rec.Code)
	}
}

func TestRandomEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(), "/api/random")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var entry corpus.IndexEntry
	decodeBody(t, rec, &entry)
	if entry.BookID != "psalms" && entry.BookID != "john" {
		t.Errorf("random verse from unknown book: %+v", entry)
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	s := testServer()

	rec := doRequest(t, s, "/api/books")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing generated X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "trace-123" {
		t.Errorf("X-Request-ID = %q, want the client's", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(), "/metrics")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
