package store

import (
	"slices"
	"strings"
	"sync"

	"gamecollector/backend/internal/models"
)

// GameSystemStore keeps game systems in memory. It is safe for concurrent use.
type GameSystemStore struct {
	mu    sync.RWMutex
	items []models.GameSystem
	newID IDGenerator
}

// NewGameSystemStore constructs an empty GameSystemStore.
func NewGameSystemStore() *GameSystemStore {
	return &GameSystemStore{newID: NewID}
}

// List returns a copy of the game systems matching q.
func (s *GameSystemStore) List(q GameSystemQuery) []models.GameSystem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.GameSystem, 0, len(s.items))
	for _, gs := range s.items {
		if q.Name != nil && gs.Name != *q.Name {
			continue
		}
		result = append(result, gs)
	}

	switch q.Sort {
	case "name":
		slices.SortStableFunc(result, func(a, b models.GameSystem) int {
			return strings.Compare(a.Name, b.Name)
		})
	case descendingPrefix + "name":
		slices.SortStableFunc(result, func(a, b models.GameSystem) int {
			return strings.Compare(b.Name, a.Name)
		})
	}
	return result
}

// GetByID returns the first game system with the given id.
func (s *GameSystemStore) GetByID(id string) (models.GameSystem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return models.GameSystem{}, false
}

// GetByName returns the first game system with the given name.
func (s *GameSystemStore) GetByName(name string) (models.GameSystem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, gs := range s.items {
		if gs.Name == name {
			return gs, true
		}
	}
	return models.GameSystem{}, false
}

// Create stores a new game system under a generated id and returns the stored copy.
func (s *GameSystemStore) Create(in models.GameSystemInput) models.GameSystem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, models.GameSystem{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
	})
	return s.items[len(s.items)-1]
}

// Update overwrites name, description and image of the game system with
// gs.ID. It reports false when no such game system exists.
func (s *GameSystemStore) Update(gs models.GameSystem) (models.GameSystem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(gs.ID)
	if i < 0 {
		return models.GameSystem{}, false
	}
	s.items[i].Name = gs.Name
	s.items[i].Description = gs.Description
	s.items[i].Image = gs.Image
	return s.items[i], true
}

// Delete removes the game system with the given id.
func (s *GameSystemStore) Delete(id string) bool {
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
func (s *GameSystemStore) Init(items []models.GameSystem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(items)
}

// Len returns the number of stored game systems.
func (s *GameSystemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *GameSystemStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(gs models.GameSystem) bool { return gs.ID == id })
}
