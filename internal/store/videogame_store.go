package store

import (
	"slices"
	"sync"

	"gamecollector/backend/internal/models"
)

// VideoGameStore keeps video games in memory. It is safe for concurrent use.
type VideoGameStore struct {
	mu    sync.RWMutex
	items []models.VideoGame
	newID IDGenerator
}

// NewVideoGameStore constructs an empty VideoGameStore.
func NewVideoGameStore() *VideoGameStore {
	return &VideoGameStore{newID: NewID}
}

// List returns a copy of the video games matching the filters of q, ordered
// by q.Sort. q.Fields is ignored; see ListFields.
func (s *VideoGameStore) List(q VideoGameQuery) []models.VideoGame {
	s.mu.RLock()
	result := make([]models.VideoGame, 0, len(s.items))
	for _, v := range s.items {
		if q.matches(v) {
			result = append(result, v)
		}
	}
	s.mu.RUnlock()

	if q.Sort != "" {
		sortVideoGames(result, q.Sort)
	}
	return result
}

// ListFields runs List and projects every entry onto q.Fields.
func (s *VideoGameStore) ListFields(q VideoGameQuery) []map[string]any {
	return Project(s.List(q), q.Fields)
}

// GetByID returns the first video game with the given id.
func (s *VideoGameStore) GetByID(id string) (models.VideoGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return models.VideoGame{}, false
}

// GetByName returns the first video game with the given name.
func (s *VideoGameStore) GetByName(name string) (models.VideoGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.items {
		if v.Name == name {
			return v, true
		}
	}
	return models.VideoGame{}, false
}

// Create stores a new video game under a generated id and returns the stored copy.
func (s *VideoGameStore) Create(in models.VideoGameInput) models.VideoGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, models.VideoGame{
		ID:         s.newID(),
		Name:       in.Name,
		Developer:  in.Developer,
		GameSystem: in.GameSystem,
		Genre:      in.Genre,
		Year:       in.Year,
		Image:      in.Image,
	})
	return s.items[len(s.items)-1]
}

// Update overwrites every field but the id of the video game with v.ID.
// It reports false when no such video game exists.
func (s *VideoGameStore) Update(v models.VideoGame) (models.VideoGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(v.ID)
	if i < 0 {
		return models.VideoGame{}, false
	}
	s.items[i] = v
	return s.items[i], true
}

// Delete removes the video game with the given id.
func (s *VideoGameStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Init replaces the whole collection. Intended for seeding and tests.
func (s *VideoGameStore) Init(items []models.VideoGame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(items)
}

// Len returns the number of stored video games.
func (s *VideoGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *VideoGameStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(v models.VideoGame) bool { return v.ID == id })
}
