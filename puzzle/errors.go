package puzzle

import "errors"

// Rejections. None of them change puzzle state.
var (
	ErrBlocked          = errors.New("puzzle: blocked")
	ErrSizeLimit        = errors.New("puzzle: size limit reached")
	ErrInvalidDirection = errors.New("puzzle: invalid direction")
	ErrInputLocked      = errors.New("puzzle: input locked")
	ErrNoActivePair     = errors.New("puzzle: no active pair")
	ErrNoHistory        = errors.New("puzzle: nothing to undo")
	ErrUnknownCommand   = errors.New("puzzle: unknown command")
	ErrInvalidConfig    = errors.New("puzzle: invalid config")
)
