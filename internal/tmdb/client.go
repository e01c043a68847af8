// Package tmdb is a thin client for The Movie Database HTTP API. All requests
// pin the display locale configured at construction; failures surface as
// *StatusError for non-2xx responses so callers can treat upstream errors
// uniformly.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/config"
	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
)

type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: %s returned status %d", e.URL, e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:  cfg.TMDBBaseURL,
		apiKey:   cfg.TMDBAPIKey,
		language: cfg.TMDBLanguage,
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if !params.Has("language") {
		params.Set("language", c.language)
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, URL: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb: failed to decode %s response: %w", path, err)
	}
	return nil
}

// endpointFor maps a media type onto its TMDB path segment. Anything that is
// not a movie is treated as a series, matching the original surface.
func endpointFor(t domain.MediaType) string {
	if t == domain.MediaTypeMovie {
		return "movie"
	}
	return "tv"
}

func (c *Client) Search(ctx context.Context, mediaType domain.MediaType, query string) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	var page Page
	if err := c.get(ctx, "/search/"+endpointFor(mediaType), params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Popular(ctx context.Context, mediaType domain.MediaType) (*Page, error) {
	var page Page
	if err := c.get(ctx, "/"+endpointFor(mediaType)+"/popular", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DiscoverFilter narrows a discover query. Zero values are omitted from the
// request.
type DiscoverFilter struct {
	Genre string
	Year  string
}

func (c *Client) Discover(ctx context.Context, mediaType domain.MediaType, filter DiscoverFilter) (*Page, error) {
	params := url.Values{}
	if filter.Genre != "" {
		params.Set("with_genres", filter.Genre)
	}
	if filter.Year != "" {
		if mediaType == domain.MediaTypeMovie {
			params.Set("primary_release_year", filter.Year)
		} else {
			params.Set("first_air_date_year", filter.Year)
		}
	}
	var page Page
	if err := c.get(ctx, "/discover/"+endpointFor(mediaType), params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MoviesByActor searches for the person by name and returns movies featuring
// the best match. An unknown actor yields an empty page, not an error.
func (c *Client) MoviesByActor(ctx context.Context, actor string) (*Page, error) {
	params := url.Values{}
	params.Set("query", actor)
	var people personSearchResponse
	if err := c.get(ctx, "/search/person", params, &people); err != nil {
		return nil, err
	}
	if len(people.Results) == 0 {
		return &Page{Results: []Item{}}, nil
	}

	params = url.Values{}
	params.Set("with_cast", strconv.FormatInt(people.Results[0].ID, 10))
	var page Page
	if err := c.get(ctx, "/discover/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Details fetches the full record for an item with videos and credits
// appended.
func (c *Client) Details(ctx context.Context, mediaType domain.MediaType, id int64) (*Detail, error) {
	params := url.Values{}
	params.Set("append_to_response", "videos,credits")
	var detail Detail
	path := fmt.Sprintf("/%s/%d", endpointFor(mediaType), id)
	if err := c.get(ctx, path, params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) WatchProviders(ctx context.Context, mediaType domain.MediaType, id int64) (*WatchProviders, error) {
	var providers WatchProviders
	path := fmt.Sprintf("/%s/%d/watch/providers", endpointFor(mediaType), id)
	if err := c.get(ctx, path, nil, &providers); err != nil {
		return nil, err
	}
	if providers.Results == nil {
		providers.Results = map[string]CountryProviders{}
	}
	return &providers, nil
}

func (c *Client) Recommendations(ctx context.Context, mediaType domain.MediaType, id int64) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/%s/%d/recommendations", endpointFor(mediaType), id)
	if err := c.get(ctx, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Genres returns the combined movie and TV genre vocabularies.
func (c *Client) Genres(ctx context.Context) (*GenreVocabulary, error) {
	var movies GenreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &movies); err != nil {
		return nil, err
	}
	var tv GenreListResponse
	if err := c.get(ctx, "/genre/tv/list", nil, &tv); err != nil {
		return nil, err
	}
	return &GenreVocabulary{MovieGenres: movies.Genres, TVGenres: tv.Genres}, nil
}
