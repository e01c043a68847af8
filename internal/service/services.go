package service

import (
	"github.com/gilson1254/catalogo-de-filmes/internal/config"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
)

type Services struct {
	Auth      *AuthService
	Room      *RoomService
	List      *ListService
	Note      *NoteService
	Rating    *RatingService
	Session   *SessionService
	Discovery *DiscoveryService
}

func NewServices(repos *repository.Repositories, tmdbClient *tmdb.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, repos.Session, cfg),
		Room:      NewRoomService(repos.Room, repos.RoomMember),
		List:      NewListService(repos.ListEntry, repos.User),
		Note:      NewNoteService(repos.Note, repos.User),
		Rating:    NewRatingService(repos.Rating, tmdbClient),
		Session:   NewSessionService(repos.WatchSession, repos.User, tmdbClient),
		Discovery: NewDiscoveryService(repos.ListEntry, tmdbClient),
	}
}
