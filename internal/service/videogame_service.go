package service

import (
	"sync"

	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/logging"
	"gamecollector/backend/internal/models"
	"gamecollector/backend/internal/store"
)

// VideoGameStore defines the storage contract used by the services.
type VideoGameStore interface {
	List(q store.VideoGameQuery) []models.VideoGame
	ListFields(q store.VideoGameQuery) []map[string]any
	GetByID(id string) (models.VideoGame, bool)
	Create(in models.VideoGameInput) models.VideoGame
	Update(v models.VideoGame) (models.VideoGame, bool)
	Delete(id string) bool
}

// VideoGameService applies the video game rules.
type VideoGameService struct {
	mu      *sync.Mutex
	games   VideoGameStore
	systems *GameSystemService
	log     logrus.FieldLogger
}

// NewVideoGameService constructs a VideoGameService. It shares the write
// lock of systems.
func NewVideoGameService(games VideoGameStore, systems *GameSystemService, log logrus.FieldLogger) *VideoGameService {
	return &VideoGameService{
		mu:      systems.mu,
		games:   games,
		systems: systems,
		log:     logging.Module(log, "videogame-service"),
	}
}

// List returns the video games matching q.
func (s *VideoGameService) List(q store.VideoGameQuery) []models.VideoGame {
	return s.games.List(q)
}

// ListFields returns the video games matching q projected onto q.Fields.
func (s *VideoGameService) ListFields(q store.VideoGameQuery) []map[string]any {
	return s.games.ListFields(q)
}

// GetByID returns the video game with the given id.
func (s *VideoGameService) GetByID(id string) (models.VideoGame, bool) {
	return s.games.GetByID(id)
}

// Create stores a new video game. Its game system must exist and no other
// video game may share its name on that game system.
func (s *VideoGameService) Create(in models.VideoGameInput) (models.VideoGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField(logging.FieldParams, in)
	if _, found := s.gameSystemOf(in.GameSystem); !found {
		log.Debug("create video game rejected: game system not found")
		return models.VideoGame{}, ErrCreateGameSystemNotFound
	}
	existing := s.games.List(store.VideoGameQuery{Name: &in.Name, GameSystem: &in.GameSystem})
	if len(existing) > 0 {
		log.Debug("create video game rejected: duplicate on game system")
		return models.VideoGame{}, ErrCreateVideoGameSameName
	}

	created := s.games.Create(in)
	log.WithField(logging.FieldResult, created.ID).Debug("video game created")
	return created, nil
}

// Update overwrites the video game with v.ID. The game system reference and
// name uniqueness are not checked again.
func (s *VideoGameService) Update(v models.VideoGame) (models.VideoGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, ok := s.games.Update(v)
	if !ok {
		s.log.WithField(logging.FieldParams, v).Debug("update video game rejected: unknown id")
		return models.VideoGame{}, ErrUpdateVideoGameNotFound
	}
	return updated, nil
}

// Delete removes the video game with the given id.
func (s *VideoGameService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.games.Delete(id) {
		s.log.WithField(logging.FieldParams, id).Debug("delete video game rejected: unknown id")
		return ErrDeleteVideoGameNotFound
	}
	return nil
}

// gameSystemOf resolves the game system a video game refers to by name.
func (s *VideoGameService) gameSystemOf(name string) (models.GameSystem, bool) {
	return s.systems.GetByName(name)
}
