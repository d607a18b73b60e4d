package game

import "errors"

var (
	// ErrGameFinished is returned for actions after the last round ended.
	ErrGameFinished = errors.New("game: game is finished")

	// ErrRoundEnding is returned by Start while a round is closing.
	ErrRoundEnding = errors.New("game: round is ending")

	// ErrNoActiveRound is returned by Drop between rounds.
	ErrNoActiveRound = errors.New("game: no active round")

	// ErrDropLimit is returned by Drop when the round already has its
	// ingredient.
	ErrDropLimit = errors.New("game: ingredient already dropped this round")

	// ErrNoIngredients is returned when a catalog has no images to pick.
	ErrNoIngredients = errors.New("game: no ingredient images")

	// ErrInvalidConfig is wrapped by configuration validation errors.
	ErrInvalidConfig = errors.New("game: invalid configuration")
)
