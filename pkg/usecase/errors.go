package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	ErrNoGuildEmojis = errors.New("guild has no custom emojis to pick from")
)
