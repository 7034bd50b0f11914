package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// CosetPoints returns [κ·μ^0, ..., κ·μ^{m-1}], the evaluation points a
// COSET_LAGRANGE_4 vector of length m is indexed by, where μ is the
// generator of d.Big (the order-4n domain).
func CosetPoints(d *Domain, kappa fr.Element, m int) []fr.Element {
	pts := make([]fr.Element, m)
	mu := d.Big.Generator
	var pow fr.Element
	pow.SetOne()
	for i := 0; i < m; i++ {
		pts[i].Mul(&kappa, &pow)
		pow.Mul(&pow, &mu)
	}
	return pts
}

// ToCosetExtended lifts p to COSET_LAGRANGE_4 by substituting X ← κX and
// evaluating the result on the order-4n domain. p must be MONOMIAL already,
// or LAGRANGE (length n), in which case it is first interpolated to
// MONOMIAL via IFFT. The resulting monomial representation (after the
// substitution) must have degree < 4n.
func (p *Polynomial) ToCosetExtended(d *Domain, kappa fr.Element) (*Polynomial, error) {
	mono := p
	if p.basis == Lagrange {
		var err error
		mono, err = p.IFFT(d)
		if err != nil {
			return nil, err
		}
	} else if p.basis != Monomial {
		return nil, fmt.Errorf("%w: ToCosetExtended needs monomial or lagrange, got %s", ErrWrongBasis, p.basis)
	}

	m := int(4 * d.N())
	if len(mono.values) > m {
		return nil, fmt.Errorf("%w: degree %d >= 4n (%d)", ErrDegreeOverflow, len(mono.values)-1, m)
	}

	shifted := make([]fr.Element, m)
	copy(shifted, mono.values)
	var pow fr.Element
	pow.SetOne()
	for i := range shifted {
		shifted[i].Mul(&shifted[i], &pow)
		pow.Mul(&pow, &kappa)
	}

	d.Big.FFT(shifted, fft.DIF)
	fft.BitReverse(shifted)

	return &Polynomial{basis: CosetLagrange4, values: shifted}, nil
}

// FromCosetExtended inverts ToCosetExtended: it inverse-FFTs the order-4n
// evaluations, then undoes the X ← κX substitution by scaling coefficient i
// by κ^{-i}, yielding the MONOMIAL form of degree < 4n.
func (p *Polynomial) FromCosetExtended(d *Domain, kappa fr.Element) (*Polynomial, error) {
	if p.basis != CosetLagrange4 {
		return nil, fmt.Errorf("%w: FromCosetExtended requires coset_lagrange_4, got %s", ErrWrongBasis, p.basis)
	}
	if uint64(len(p.values)) != 4*d.N() {
		return nil, fmt.Errorf("%w: expected length %d, got %d", ErrLengthMismatch, 4*d.N(), len(p.values))
	}

	vals := make([]fr.Element, len(p.values))
	copy(vals, p.values)
	d.Big.FFTInverse(vals, fft.DIF)
	fft.BitReverse(vals)

	var kappaInv, pow fr.Element
	kappaInv.Inverse(&kappa)
	pow.SetOne()
	for i := range vals {
		vals[i].Mul(&vals[i], &pow)
		pow.Mul(&pow, &kappaInv)
	}

	return &Polynomial{basis: Monomial, values: vals}, nil
}

// Shift rotates a COSET_LAGRANGE_4 evaluation vector left by k positions.
// With k=4 this turns Z's coset evaluations into Z(ωX)'s, since the 4n
// domain's generator μ satisfies μ^4 = ω.
func (p *Polynomial) Shift(k int) (*Polynomial, error) {
	if p.basis != CosetLagrange4 {
		return nil, fmt.Errorf("%w: Shift requires coset_lagrange_4, got %s", ErrWrongBasis, p.basis)
	}
	n := len(p.values)
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		out[i] = p.values[(i+k)%n]
	}
	return &Polynomial{basis: CosetLagrange4, values: out}, nil
}
