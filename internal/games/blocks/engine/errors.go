package engine

import "errors"

var (
	// ErrInvalidKind is returned for piece kinds outside 1-7.
	ErrInvalidKind = errors.New("engine: invalid piece kind")

	// ErrInvalidDirection is returned for rotation directions other than
	// Clockwise and CounterClockwise.
	ErrInvalidDirection = errors.New("engine: invalid rotation direction")

	// ErrInvalidBoard is returned when session options describe an unusable
	// playfield or gravity curve.
	ErrInvalidBoard = errors.New("engine: invalid board options")
)
