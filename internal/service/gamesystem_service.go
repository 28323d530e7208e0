// Package service enforces the collection's business rules on top of the stores.
//
// Expected failures are returned as *RuleError values. Every mutating
// operation of both services runs under one shared lock so that the
// check-then-act sequences (name uniqueness, dependents before delete,
// referenced game system before create) cannot interleave.
package service

import (
	"sync"

	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/logging"
	"gamecollector/backend/internal/models"
	"gamecollector/backend/internal/store"
)

// GameSystemStore defines the storage contract used by GameSystemService.
type GameSystemStore interface {
	List(q store.GameSystemQuery) []models.GameSystem
	GetByID(id string) (models.GameSystem, bool)
	GetByName(name string) (models.GameSystem, bool)
	Create(in models.GameSystemInput) models.GameSystem
	Update(gs models.GameSystem) (models.GameSystem, bool)
	Delete(id string) bool
}

// GameSystemService applies the game system rules.
type GameSystemService struct {
	mu      *sync.Mutex
	systems GameSystemStore
	games   VideoGameStore
	log     logrus.FieldLogger
}

// NewGameSystemService constructs a GameSystemService. games is consulted
// for dependents before a game system is deleted.
func NewGameSystemService(systems GameSystemStore, games VideoGameStore, log logrus.FieldLogger) *GameSystemService {
	return &GameSystemService{
		mu:      &sync.Mutex{},
		systems: systems,
		games:   games,
		log:     logging.Module(log, "gamesystem-service"),
	}
}

// List returns the game systems matching q.
func (s *GameSystemService) List(q store.GameSystemQuery) []models.GameSystem {
	result := s.systems.List(q)
	s.log.WithField(logging.FieldResult, len(result)).Debug("list game systems")
	return result
}

// GetByID returns the game system with the given id.
func (s *GameSystemService) GetByID(id string) (models.GameSystem, bool) {
	return s.systems.GetByID(id)
}

// GetByName returns the game system with the given name.
func (s *GameSystemService) GetByName(name string) (models.GameSystem, bool) {
	return s.systems.GetByName(name)
}

// Create stores a new game system unless its name is already taken.
func (s *GameSystemService) Create(in models.GameSystemInput) (models.GameSystem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField(logging.FieldParams, in)
	if _, found := s.systems.GetByName(in.Name); found {
		log.Debug("create game system rejected: name taken")
		return models.GameSystem{}, ErrCreateGameSystemSameName
	}

	created := s.systems.Create(in)
	log.WithField(logging.FieldResult, created.ID).Debug("game system created")
	return created, nil
}

// Update overwrites the game system with gs.ID. The new name may only be
// owned by that same game system.
func (s *GameSystemService) Update(gs models.GameSystem) (models.GameSystem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField(logging.FieldParams, gs)
	if _, found := s.systems.GetByID(gs.ID); !found {
		log.Debug("update game system rejected: unknown id")
		return models.GameSystem{}, ErrUpdateGameSystemNotFound
	}
	if owner, found := s.systems.GetByName(gs.Name); found && owner.ID != gs.ID {
		log.Debug("update game system rejected: name taken")
		return models.GameSystem{}, ErrUpdateGameSystemSameName
	}

	updated, ok := s.systems.Update(gs)
	if !ok {
		return models.GameSystem{}, ErrUpdateGameSystemNotFound
	}
	log.Debug("game system updated")
	return updated, nil
}

// Delete removes the game system with the given id unless video games
// still reference it.
func (s *GameSystemService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField(logging.FieldParams, id)
	gs, found := s.systems.GetByID(id)
	if !found {
		log.Debug("delete game system rejected: unknown id")
		return ErrDeleteGameSystemNotFound
	}
	if len(s.dependents(gs)) > 0 {
		log.Debug("delete game system rejected: video games associated")
		return ErrDeleteVideoGamesExist
	}
	if !s.systems.Delete(id) {
		return ErrDeleteGameSystemNotFound
	}
	log.Debug("game system deleted")
	return nil
}

// dependents returns the video games referencing gs. Video games reference
// their game system by name, so renamed game systems lose their dependents.
func (s *GameSystemService) dependents(gs models.GameSystem) []models.VideoGame {
	return s.games.List(store.VideoGameQuery{GameSystem: &gs.Name})
}
