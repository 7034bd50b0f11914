package plonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// round2 builds the permutation grand-product accumulator Z, checks it
// wraps back around to 1, and commits it.
//
// Denominators are inverted in one batch rather than one at a time, since
// a single field inversion amortized over n elements is far cheaper than
// n separate inversions.
func round2(setup Setup, st *state, beta, gamma fr.Element) (*state, Message2, error) {
	domain := st.domain
	n := int(domain.N())
	omega := domain.Omega()

	var two, three fr.Element
	two.SetUint64(2)
	three.SetUint64(3)

	numerators := make([]fr.Element, n)
	denominators := make([]fr.Element, n)

	var omegaPow fr.Element
	omegaPow.SetOne()
	for i := 0; i < n; i++ {
		var w2, w3 fr.Element
		w2.Mul(&two, &omegaPow)
		w3.Mul(&three, &omegaPow)

		num := rlc(st.a.At(i), omegaPow, beta, gamma)
		num2 := rlc(st.b.At(i), w2, beta, gamma)
		num3 := rlc(st.c.At(i), w3, beta, gamma)
		num.Mul(&num, &num2)
		num.Mul(&num, &num3)
		numerators[i] = num

		den := rlc(st.a.At(i), st.pk.S1.At(i), beta, gamma)
		den2 := rlc(st.b.At(i), st.pk.S2.At(i), beta, gamma)
		den3 := rlc(st.c.At(i), st.pk.S3.At(i), beta, gamma)
		den.Mul(&den, &den2)
		den.Mul(&den, &den3)
		if den.IsZero() {
			return nil, Message2{}, fmt.Errorf("%w: zero permutation denominator at row %d", ErrPermutationWraparound, i)
		}
		denominators[i] = den

		omegaPow.Mul(&omegaPow, &omega)
	}

	invDen := fr.BatchInvert(denominators)

	zVals := make([]fr.Element, n)
	zVals[0].SetOne()
	for i := 0; i < n-1; i++ {
		var step fr.Element
		step.Mul(&numerators[i], &invDen[i])
		zVals[i+1].Mul(&zVals[i], &step)
	}

	// The accumulator must wrap back around to 1: Z_0 * den_{n-1} ==
	// Z_{n-1} * num_{n-1}. Verified via the local per-row identity below,
	// which also covers rows 0..n-2.
	for i := 0; i < n; i++ {
		next := zVals[(i+1)%n]
		var lhs, rhs fr.Element
		lhs.Mul(&next, &denominators[i])
		rhs.Mul(&zVals[i], &numerators[i])
		if !lhs.Equal(&rhs) {
			return nil, Message2{}, fmt.Errorf("%w: local identity failed at row %d", ErrPermutationWraparound, i)
		}
	}

	z := poly.NewLagrange(zVals)
	zMono, err := z.IFFT(domain)
	if err != nil {
		return nil, Message2{}, err
	}
	z1, err := setup.Commit(zMono, domain.N())
	if err != nil {
		return nil, Message2{}, fmt.Errorf("plonk: commit z: %w", err)
	}

	next := st.clone()
	next.z = z
	next.beta = beta
	next.gamma = gamma
	return next, Message2{Z1: z1}, nil
}
