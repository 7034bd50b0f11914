package poly

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BarycentricEval evaluates a LAGRANGE polynomial of length d.N() at an
// arbitrary field point x, using the barycentric formula for evaluation
// over a multiplicative subgroup H = {ω^0,...,ω^{n-1}}:
//
//	p(x) = (x^n - 1)/n * Σ_i values[i]·ω^i / (x - ω^i)
//
// If x is itself a root of unity ω^j, every denominator but the j-th
// vanishes along with the (x^n-1) numerator; that case is handled directly
// by returning values[j] rather than dividing by zero.
func (p *Polynomial) BarycentricEval(d *Domain, x fr.Element) (fr.Element, error) {
	if p.basis != Lagrange {
		return fr.Element{}, fmt.Errorf("%w: BarycentricEval requires lagrange, got %s", ErrWrongBasis, p.basis)
	}
	n := int(d.N())
	if len(p.values) != n {
		return fr.Element{}, fmt.Errorf("%w: expected length %d, got %d", ErrLengthMismatch, n, len(p.values))
	}

	omega := d.Omega()

	var omegaPow fr.Element
	omegaPow.SetOne()
	for i := 0; i < n; i++ {
		if omegaPow.Equal(&x) {
			return p.values[i], nil
		}
		omegaPow.Mul(&omegaPow, &omega)
	}

	var xn, one, numerator fr.Element
	one.SetOne()
	xn.Exp(x, new(big.Int).SetUint64(uint64(n)))
	numerator.Sub(&xn, &one)

	denom := make([]fr.Element, n)
	omegaPow.SetOne()
	for i := 0; i < n; i++ {
		denom[i].Sub(&x, &omegaPow)
		omegaPow.Mul(&omegaPow, &omega)
	}
	denom = fr.BatchInvert(denom)

	var acc, term fr.Element
	omegaPow.SetOne()
	for i := 0; i < n; i++ {
		term.Mul(&p.values[i], &omegaPow)
		term.Mul(&term, &denom[i])
		acc.Add(&acc, &term)
		omegaPow.Mul(&omegaPow, &omega)
	}

	var nInv fr.Element
	nInv.SetUint64(uint64(n))
	nInv.Inverse(&nInv)
	acc.Mul(&acc, &numerator)
	acc.Mul(&acc, &nInv)

	return acc, nil
}
