package models

// GameSystem represents a console or platform games run on (e.g. "Nintendo NES").
type GameSystem struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Image       string `json:"image" yaml:"image" mapstructure:"image"`
}

// GameSystemInput carries the writable fields of a GameSystem.
type GameSystemInput struct {
	Name        string `json:"name" binding:"required" example:"Nintendo NES"`
	Description string `json:"description" example:"8-bit home video game console"`
	Image       string `json:"image" example:"https://example.com/nes.png"`
}
