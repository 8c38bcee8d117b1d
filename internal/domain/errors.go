package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyCatalog is returned when a composite ranking is requested for
	// zero products; a silent empty rank would be misleading.
	ErrEmptyCatalog = errors.New("empty product catalog")

	// ErrInvalidQuantity flags a malformed transaction record.
	ErrInvalidQuantity = errors.New("negative transaction quantity")
)
