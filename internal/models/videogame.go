package models

// VideoGame represents a game in the collection.
//
// GameSystem holds the Name of a GameSystem, not its ID. Renaming a game
// system does not update the video games that reference it.
type VideoGame struct {
	ID         string `json:"id" yaml:"id" mapstructure:"id"`
	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Developer  string `json:"developer" yaml:"developer" mapstructure:"developer"`
	GameSystem string `json:"gamesystem" yaml:"gamesystem" mapstructure:"gamesystem"`
	Genre      string `json:"genre" yaml:"genre" mapstructure:"genre"`
	Year       int    `json:"year" yaml:"year" mapstructure:"year"`
	Image      string `json:"image" yaml:"image" mapstructure:"image"`
}

// VideoGameInput carries the writable fields of a VideoGame.
type VideoGameInput struct {
	Name       string `json:"name" binding:"required" example:"Super Mario Bros"`
	Developer  string `json:"developer" example:"Nintendo"`
	GameSystem string `json:"gamesystem" binding:"required" example:"Nintendo NES"`
	Genre      string `json:"genre" example:"Platform"`
	Year       int    `json:"year" example:"1985"`
	Image      string `json:"image" example:"https://example.com/smb.png"`
}
