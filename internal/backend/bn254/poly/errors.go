package poly

import "errors"

// These are the polynomial engine's programmer-error sentinels: every
// operation that is only defined for certain bases, lengths, or degrees
// rejects the rest through one of these rather than panicking or silently
// truncating.
var (
	ErrBasisMismatch  = errors.New("poly: basis mismatch")
	ErrLengthMismatch = errors.New("poly: length mismatch")
	ErrWrongBasis     = errors.New("poly: operation not defined for this basis")
	ErrDegreeOverflow = errors.New("poly: degree exceeds what the target basis can represent")
	ErrDivisionByZero = errors.New("poly: division by a zero evaluation")
)
