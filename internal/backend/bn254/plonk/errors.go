package plonk

import (
	"errors"

	"github.com/plonkgo/prover/internal/backend/bn254/transcript"
)

// Category 1: the witness does not satisfy the circuit.
var (
	ErrGateIdentity          = errors.New("plonk: gate identity does not vanish on the domain")
	ErrPermutationWraparound = errors.New("plonk: permutation accumulator does not wrap around to 1")
)

// Category 2: an internal consistency check the round driver itself
// should never fail, short of a programmer error in how it was wired up
// (wrong domain size, a preprocessed-input polynomial in the wrong basis,
// and so on; most of those surface directly as one of the poly package's
// own errors instead).
var (
	ErrQuotientDegree = errors.New("plonk: quotient has a non-zero coefficient at or above degree 3n")
	ErrCrossCheck     = errors.New("plonk: T1/T2/T3 do not recombine to the quotient's value at kappa")
	ErrLinearization  = errors.New("plonk: linearization polynomial does not vanish at zeta")
	ErrDegreeOverflow = errors.New("plonk: opening polynomial has a nonzero coefficient at or above degree n")
)

// ErrChallengeCollision re-exports the transcript package's rejection-
// sampling failure so callers can errors.Is against one name regardless of
// which layer raised it.
var ErrChallengeCollision = transcript.ErrChallengeCollision
