package service

import (
	"context"
	"log"
	"math/rand"
	"sort"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/google/uuid"
)

// DiscoveryService derives views over a room's lists: the recommendation
// sampler, the spin-the-wheel picker and the statistics aggregator.
type DiscoveryService struct {
	listRepo repository.ListEntryRepository
	tmdb     *tmdb.Client
}

func NewDiscoveryService(listRepo repository.ListEntryRepository, tmdbClient *tmdb.Client) *DiscoveryService {
	return &DiscoveryService{
		listRepo: listRepo,
		tmdb:     tmdbClient,
	}
}

// Recommendations picks one want-to-watch entry of the type uniformly at
// random and returns the catalog's recommendations for it.
func (s *DiscoveryService) Recommendations(ctx context.Context, roomID uuid.UUID, mediaType domain.MediaType) (*tmdb.Page, error) {
	entries, err := s.listRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	var candidates []*domain.ListEntry
	for _, entry := range entries {
		if entry.ItemType == mediaType && entry.Status == domain.StatusWantToWatch {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return nil, domain.ErrEmptyWatchlist
	}

	seed := candidates[rand.Intn(len(candidates))]
	return s.tmdb.Recommendations(ctx, seed.ItemType, seed.ItemID)
}

// WheelCandidate is one distinct (item, type) pair eligible for the wheel.
type WheelCandidate struct {
	ItemID   int64            `json:"itemId"`
	ItemType domain.MediaType `json:"itemType"`
}

type SpinResult struct {
	Winner     *tmdb.Detail     `json:"winner"`
	Candidates []WheelCandidate `json:"allItems"`
}

// SpinWheel collects the distinct (item, type) pairs on any member's
// want-to-watch list, optionally filtered by type, and picks one uniformly at
// random. An empty candidate set is an error, never a selection.
func (s *DiscoveryService) SpinWheel(ctx context.Context, roomID uuid.UUID, mediaType domain.MediaType) (*SpinResult, error) {
	entries, err := s.listRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	seen := make(map[WheelCandidate]bool)
	var candidates []WheelCandidate
	for _, entry := range entries {
		if entry.Status != domain.StatusWantToWatch {
			continue
		}
		if mediaType != "" && entry.ItemType != mediaType {
			continue
		}
		candidate := WheelCandidate{ItemID: entry.ItemID, ItemType: entry.ItemType}
		if !seen[candidate] {
			seen[candidate] = true
			candidates = append(candidates, candidate)
		}
	}
	if len(candidates) == 0 {
		return nil, domain.ErrEmptyWatchlist
	}

	winner := candidates[rand.Intn(len(candidates))]
	detail, err := s.tmdb.Details(ctx, winner.ItemType, winner.ItemID)
	if err != nil {
		return nil, err
	}

	return &SpinResult{Winner: detail, Candidates: candidates}, nil
}

type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RoomStats struct {
	TotalItems  int          `json:"total_items"`
	TotalMovies int          `json:"total_movies"`
	TotalTV     int          `json:"total_tv"`
	Watched     int          `json:"watched"`
	WantToWatch int          `json:"watchlist"`
	TopGenres   []GenreCount `json:"top_genres"`
}

// Stats counts the room's entries and builds a genre histogram from per-item
// catalog lookups. Items whose lookup fails are skipped. The top 5 genres are
// returned by count descending, ties broken by first-seen order.
func (s *DiscoveryService) Stats(ctx context.Context, roomID uuid.UUID) (*RoomStats, error) {
	entries, err := s.listRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	stats := &RoomStats{TopGenres: []GenreCount{}}
	var distinct []WheelCandidate
	seen := make(map[WheelCandidate]bool)
	for _, entry := range entries {
		stats.TotalItems++
		switch entry.ItemType {
		case domain.MediaTypeMovie:
			stats.TotalMovies++
		case domain.MediaTypeTV:
			stats.TotalTV++
		}
		switch entry.Status {
		case domain.StatusWatched:
			stats.Watched++
		case domain.StatusWantToWatch:
			stats.WantToWatch++
		}

		item := WheelCandidate{ItemID: entry.ItemID, ItemType: entry.ItemType}
		if !seen[item] {
			seen[item] = true
			distinct = append(distinct, item)
		}
	}

	counts := make(map[string]int)
	var genreOrder []string
	for _, item := range distinct {
		detail, err := s.tmdb.Details(ctx, item.ItemType, item.ItemID)
		if err != nil {
			log.Printf("ERROR [DiscoveryService] failed to fetch item for stats %s %d: %v", item.ItemType, item.ItemID, err)
			continue
		}
		for _, genre := range detail.Genres {
			if _, ok := counts[genre.Name]; !ok {
				genreOrder = append(genreOrder, genre.Name)
			}
			counts[genre.Name]++
		}
	}

	for _, name := range genreOrder {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(stats.TopGenres, func(i, j int) bool {
		return stats.TopGenres[i].Count > stats.TopGenres[j].Count
	})
	if len(stats.TopGenres) > 5 {
		stats.TopGenres = stats.TopGenres[:5]
	}

	return stats, nil
}
