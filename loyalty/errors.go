package loyalty

import "errors"

var (
	// ErrInvalidSpend is returned when a spend event is malformed
	ErrInvalidSpend = errors.New("invalid spend event")

	// ErrNoTiers is returned when classification is attempted with an empty tier list
	ErrNoTiers = errors.New("no tier definitions configured")
)
