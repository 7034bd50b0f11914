package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// state threads one round's output and the challenges it earned forward
// into the next round. Each round function takes a *state and returns a
// new one; no round mutates the state it was handed, and no round holds a
// receiver shared across the whole proof: a round is a pure function of
// (state, challenges), not a method that mutates a shared prover object.
type state struct {
	domain *poly.Domain
	pk     *CommonPreprocessedInput
	pi     *poly.Polynomial // LAGRANGE, length n

	a, b, c     *poly.Polynomial // LAGRANGE, length n
	beta, gamma fr.Element

	z            *poly.Polynomial // LAGRANGE, length n
	alpha, kappa fr.Element

	t1, t2, t3 *poly.Polynomial // LAGRANGE, length n
	zeta       fr.Element

	aEval, bEval, cEval, s1Eval, s2Eval, zShiftedEval fr.Element
}

func (s *state) clone() *state {
	c := *s
	return &c
}

// rlc computes the random linear combination u + β·w + γ used throughout
// the permutation argument.
func rlc(u, w, beta, gamma fr.Element) fr.Element {
	var out fr.Element
	out.Mul(&beta, &w)
	out.Add(&out, &u)
	out.Add(&out, &gamma)
	return out
}
