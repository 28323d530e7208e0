package store

import (
	"cmp"
	"slices"
	"strings"

	"gamecollector/backend/internal/models"
)

const descendingPrefix = "-"

// GameSystemQuery filters and orders a game system listing. Nil filters are ignored.
type GameSystemQuery struct {
	Name *string
	Sort string // "name" or "-name"; anything else leaves the order untouched
}

// VideoGameQuery filters, orders and projects a video game listing.
// All non-nil filters must match exactly.
type VideoGameQuery struct {
	Name       *string
	Developer  *string
	GameSystem *string
	Genre      *string
	Year       *int

	// Sort is a field name, prefixed with "-" for descending order.
	Sort string
	// Fields is a comma-separated list of fields to keep in each entry.
	Fields string
}

// videoGameFields maps JSON field names to their accessors. It backs sorting
// and projection.
var videoGameFields = map[string]func(models.VideoGame) any{
	"id":         func(v models.VideoGame) any { return v.ID },
	"name":       func(v models.VideoGame) any { return v.Name },
	"developer":  func(v models.VideoGame) any { return v.Developer },
	"gamesystem": func(v models.VideoGame) any { return v.GameSystem },
	"genre":      func(v models.VideoGame) any { return v.Genre },
	"year":       func(v models.VideoGame) any { return v.Year },
	"image":      func(v models.VideoGame) any { return v.Image },
}

func (q VideoGameQuery) matches(v models.VideoGame) bool {
	switch {
	case q.Name != nil && v.Name != *q.Name:
		return false
	case q.Developer != nil && v.Developer != *q.Developer:
		return false
	case q.GameSystem != nil && v.GameSystem != *q.GameSystem:
		return false
	case q.Genre != nil && v.Genre != *q.Genre:
		return false
	case q.Year != nil && v.Year != *q.Year:
		return false
	}
	return true
}

// parseSort splits a sort token into its field name and direction.
func parseSort(token string) (field string, desc bool) {
	if strings.HasPrefix(token, descendingPrefix) {
		return strings.TrimPrefix(token, descendingPrefix), true
	}
	return token, false
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		y, _ := b.(string)
		return strings.Compare(x, y)
	case int:
		y, _ := b.(int)
		return cmp.Compare(x, y)
	}
	return 0
}

// sortVideoGames orders games in place by the field named in token. Unknown
// fields keep the input order.
func sortVideoGames(games []models.VideoGame, token string) {
	field, desc := parseSort(token)
	get, ok := videoGameFields[field]
	if !ok {
		return
	}
	slices.SortStableFunc(games, func(a, b models.VideoGame) int {
		c := compareValues(get(a), get(b))
		if desc {
			return -c
		}
		return c
	})
}

// Project reduces each game to the comma-separated fields requested.
// Unknown field names are skipped.
func Project(games []models.VideoGame, fields string) []map[string]any {
	names := splitFields(fields)
	result := make([]map[string]any, 0, len(games))
	for _, g := range games {
		entry := make(map[string]any, len(names))
		for _, name := range names {
			if get, ok := videoGameFields[name]; ok {
				entry[name] = get(g)
			}
		}
		result = append(result, entry)
	}
	return result
}

func splitFields(fields string) []string {
	var names []string
	for _, part := range strings.Split(fields, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
