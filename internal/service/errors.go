package service

// Kind identifies which business rule rejected an operation.
type Kind string

const (
	KindAlreadyExistsSameName Kind = "ALREADY_EXISTS_SAME_NAME"
	KindNotFoundByID          Kind = "NOT_FOUND_BY_ID"
	KindVideoGamesAssociated  Kind = "VIDEOGAMES_ASSOCIATED"
	KindGameSystemNotFound    Kind = "GAMESYSTEM_NOT_FOUND"
	KindVideoGameNotFound     Kind = "VIDEOGAME_NOT_FOUND"
)

// RuleError is an expected business-rule rejection. Its Message is safe to
// show to API clients.
type RuleError struct {
	Kind    Kind
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// Is matches rule errors by kind and message so errors.Is works against the
// exported values below.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

// Game system rule errors.
var (
	ErrCreateGameSystemSameName = &RuleError{KindAlreadyExistsSameName, "Not possible to create gamesystem. There is a gamesystem with the same name in the system"}
	ErrUpdateGameSystemSameName = &RuleError{KindAlreadyExistsSameName, "Not possible to update gamesystem. There is a gamesystem with the same name to update in the system"}
	ErrUpdateGameSystemNotFound = &RuleError{KindNotFoundByID, "Not possible to update gamesystem. There is NOT a gamesystem with the same id to update"}
	ErrDeleteGameSystemNotFound = &RuleError{KindNotFoundByID, "Not possible to delete gamesystem. Gamesystem not found"}
	ErrDeleteVideoGamesExist    = &RuleError{KindVideoGamesAssociated, "Not possible to delete gamesystem. There are videogames associated with the gamesystem"}
)

// Video game rule errors.
var (
	ErrCreateVideoGameSameName  = &RuleError{KindAlreadyExistsSameName, "Not possible to create videogame. Videogame exists yet for the same gamesystem"}
	ErrCreateGameSystemNotFound = &RuleError{KindGameSystemNotFound, "Gamesystem not found inserting a new videogame"}
	ErrUpdateVideoGameNotFound  = &RuleError{KindVideoGameNotFound, "Videogame not found updating a videogame"}
	ErrDeleteVideoGameNotFound  = &RuleError{KindVideoGameNotFound, "Videogame not found deleting a videogame"}
)
