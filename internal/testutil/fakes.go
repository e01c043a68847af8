package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
)

// FakeTMDB is an in-process stand-in for the catalog API. Details are served
// for seeded items and 404 otherwise; list endpoints serve seeded pages or an
// empty page.
type FakeTMDB struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	details  map[string]tmdb.Detail
	pages    map[string]tmdb.Page
	requests []string
}

// NewFakeTMDB starts a fake catalog server. It is closed via t.Cleanup.
func NewFakeTMDB(t *testing.T) *FakeTMDB {
	t.Helper()

	f := &FakeTMDB{
		t:       t,
		details: make(map[string]tmdb.Detail),
		pages:   make(map[string]tmdb.Page),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the fake server's base URL
func (f *FakeTMDB) URL() string {
	return f.server.URL
}

func detailKey(mediaType domain.MediaType, id int64) string {
	segment := "tv"
	if mediaType == domain.MediaTypeMovie {
		segment = "movie"
	}
	return fmt.Sprintf("%s/%d", segment, id)
}

// AddMovie seeds a movie detail record
func (f *FakeTMDB) AddMovie(id int64, title string, genres ...tmdb.Genre) {
	f.AddDetail(domain.MediaTypeMovie, tmdb.Detail{ID: id, Title: title, Genres: genres})
}

// AddTV seeds a series detail record
func (f *FakeTMDB) AddTV(id int64, name string, genres ...tmdb.Genre) {
	f.AddDetail(domain.MediaTypeTV, tmdb.Detail{ID: id, Name: name, Genres: genres})
}

// AddDetail seeds a full detail record
func (f *FakeTMDB) AddDetail(mediaType domain.MediaType, detail tmdb.Detail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[detailKey(mediaType, detail.ID)] = detail
}

// RemoveDetail unseeds an item so its lookup fails with 404
func (f *FakeTMDB) RemoveDetail(mediaType domain.MediaType, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.details, detailKey(mediaType, id))
}

// SetPage seeds the page served for an exact request path, for example
// "/search/movie" or "/movie/603/recommendations".
func (f *FakeTMDB) SetPage(path string, page tmdb.Page) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[path] = page
}

// Requests returns the request paths with query strings seen so far
func (f *FakeTMDB) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeTMDB) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.Path+"?"+r.URL.RawQuery)
	page, hasPage := f.pages[r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if hasPage {
		json.NewEncoder(w).Encode(page)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) == 2 && (parts[0] == "movie" || parts[0] == "tv"):
		if _, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			f.mu.Lock()
			detail, ok := f.details[parts[0]+"/"+parts[1]]
			f.mu.Unlock()
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"status_message": "not found"})
				return
			}
			json.NewEncoder(w).Encode(detail)
			return
		}
		// movie/popular, tv/popular
		json.NewEncoder(w).Encode(tmdb.Page{Results: []tmdb.Item{}})

	case len(parts) == 4 && parts[2] == "watch" && parts[3] == "providers":
		json.NewEncoder(w).Encode(tmdb.WatchProviders{Results: map[string]tmdb.CountryProviders{}})

	case len(parts) == 3 && parts[0] == "genre" && parts[2] == "list":
		genres := []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comédia"}}
		if parts[1] == "movie" {
			genres = []tmdb.Genre{{ID: 28, Name: "Ação"}, {ID: 18, Name: "Drama"}}
		}
		json.NewEncoder(w).Encode(tmdb.GenreListResponse{Genres: genres})

	default:
		json.NewEncoder(w).Encode(tmdb.Page{Results: []tmdb.Item{}})
	}
}
