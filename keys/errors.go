package keys

import "errors"

// ErrInvalidKey is returned when a scalar k is outside [1, N) — at
// construction time, or when decoded from a WIF string.
var ErrInvalidKey = errors.New("keys: private key out of range")
