package store

import (
	"fmt"

	"github.com/spf13/viper"

	"gamecollector/backend/internal/models"
)

// Seed is an initial collection loaded from a YAML (or JSON/TOML) document.
type Seed struct {
	GameSystems []models.GameSystem `mapstructure:"gamesystems"`
	VideoGames  []models.VideoGame  `mapstructure:"videogames"`
}

// LoadSeed reads a seed document from path.
func LoadSeed(path string) (Seed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}

	var seed Seed
	if err := v.Unmarshal(&seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// Apply replaces the contents of both stores with the seed. Entries without
// an id receive a generated one.
func (s Seed) Apply(systems *GameSystemStore, games *VideoGameStore) {
	gs := make([]models.GameSystem, len(s.GameSystems))
	for i, item := range s.GameSystems {
		if item.ID == "" {
			item.ID = systems.newID()
		}
		gs[i] = item
	}
	vg := make([]models.VideoGame, len(s.VideoGames))
	for i, item := range s.VideoGames {
		if item.ID == "" {
			item.ID = games.newID()
		}
		vg[i] = item
	}
	systems.Init(gs)
	games.Init(vg)
}
