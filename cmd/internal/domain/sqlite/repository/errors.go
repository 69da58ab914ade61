package repository

import "errors"

// ErrConflict is returned when a write violates one of the reservation
// unique indexes. The indexes are the authoritative double-booking guard,
// so callers treat this as the conflict signal rather than trusting the
// availability pre-check alone.
var ErrConflict = errors.New("conflicting reservation already exists")
