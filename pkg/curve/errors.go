package curve

import "errors"

// Common errors returned by curve backends
var (
	// ErrNonCanonicalScalar is returned when 32 bytes do not encode a
	// scalar in canonical reduced form.
	ErrNonCanonicalScalar = errors.New("scalar bytes are not in canonical form")
)
