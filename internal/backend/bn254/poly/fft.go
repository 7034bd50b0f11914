package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// FFT evaluates a MONOMIAL polynomial of degree < d.N() at {ω^0,...,ω^{n-1}},
// returning its LAGRANGE form.
func (p *Polynomial) FFT(d *Domain) (*Polynomial, error) {
	if p.basis != Monomial {
		return nil, fmt.Errorf("%w: FFT requires monomial, got %s", ErrWrongBasis, p.basis)
	}
	n := int(d.N())
	if len(p.values) > n {
		return nil, fmt.Errorf("%w: degree %d >= domain size %d", ErrDegreeOverflow, len(p.values)-1, n)
	}

	vals := make([]fr.Element, n)
	copy(vals, p.values)
	d.Small.FFT(vals, fft.DIF)
	fft.BitReverse(vals)

	return &Polynomial{basis: Lagrange, values: vals}, nil
}

// IFFT interpolates a LAGRANGE polynomial of length d.N() into its MONOMIAL
// form.
func (p *Polynomial) IFFT(d *Domain) (*Polynomial, error) {
	if p.basis != Lagrange {
		return nil, fmt.Errorf("%w: IFFT requires lagrange, got %s", ErrWrongBasis, p.basis)
	}
	if uint64(len(p.values)) != d.N() {
		return nil, fmt.Errorf("%w: expected length %d, got %d", ErrLengthMismatch, d.N(), len(p.values))
	}

	vals := make([]fr.Element, len(p.values))
	copy(vals, p.values)
	d.Small.FFTInverse(vals, fft.DIF)
	fft.BitReverse(vals)

	return &Polynomial{basis: Monomial, values: vals}, nil
}
