// Package poly implements the basis-tagged polynomial engine the round
// driver is built on: every vector of field elements carries an explicit
// Basis (MONOMIAL, LAGRANGE, or COSET_LAGRANGE_4), and every operation
// checks it before acting on the values.
package poly

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Polynomial is a field-element vector together with the basis it
// represents. Values are copied in by the constructors; Values returns the
// backing slice itself, which callers must not mutate.
type Polynomial struct {
	basis  Basis
	values []fr.Element
}

// NewMonomial wraps coeffs (constant term first) as a MONOMIAL polynomial.
func NewMonomial(coeffs []fr.Element) *Polynomial {
	return &Polynomial{basis: Monomial, values: clone(coeffs)}
}

// NewLagrange wraps evals (evaluations at ω^0..ω^{n-1}) as a LAGRANGE
// polynomial.
func NewLagrange(evals []fr.Element) *Polynomial {
	return &Polynomial{basis: Lagrange, values: clone(evals)}
}

// NewCosetLagrange4 wraps evals (evaluations on the order-4n coset) as a
// COSET_LAGRANGE_4 polynomial.
func NewCosetLagrange4(evals []fr.Element) *Polynomial {
	return &Polynomial{basis: CosetLagrange4, values: clone(evals)}
}

func clone(v []fr.Element) []fr.Element {
	out := make([]fr.Element, len(v))
	copy(out, v)
	return out
}

// Basis reports which representation this polynomial is in.
func (p *Polynomial) Basis() Basis { return p.basis }

// Len returns the length of the backing vector.
func (p *Polynomial) Len() int { return len(p.values) }

// Values returns the backing vector. The caller must treat it as
// read-only; mutating it invalidates every Polynomial sharing this one's
// history.
func (p *Polynomial) Values() []fr.Element { return p.values }

// At returns the i-th entry of the backing vector.
func (p *Polynomial) At(i int) fr.Element { return p.values[i] }

func (p *Polynomial) clone() *Polynomial {
	return &Polynomial{basis: p.basis, values: clone(p.values)}
}

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial. Only meaningful in MONOMIAL basis; callers in other
// bases should convert first.
func (p *Polynomial) Degree() int {
	for i := len(p.values) - 1; i >= 0; i-- {
		if !p.values[i].IsZero() {
			return i
		}
	}
	return -1
}
