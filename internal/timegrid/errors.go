package timegrid

import "errors"

// ErrInvalidInput is wrapped by every error this package returns.
// All of them describe input that can never produce a meaningful grid
// position, so retrying with the same input is pointless.
var ErrInvalidInput = errors.New("invalid input")
