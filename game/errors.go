package game

import "errors"

var (
	// ErrConfiguration means the requested board cannot exist: dimensions
	// below the minimum scan window, or fewer than two distinct orb types.
	// Fatal at construction; nothing downstream recovers from it.
	ErrConfiguration = errors.New("invalid board configuration")

	// ErrInvariantViolation means a repair or shuffle loop exhausted its
	// iteration cap without restoring the board invariant. On a validly
	// configured board this indicates a bug, not a transient condition.
	ErrInvariantViolation = errors.New("board invariant could not be restored")
)
