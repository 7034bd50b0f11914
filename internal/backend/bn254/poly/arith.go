package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func sameShape(a, b *Polynomial) error {
	if a.basis != b.basis {
		return fmt.Errorf("%w: %s vs %s", ErrBasisMismatch, a.basis, b.basis)
	}
	if len(a.values) != len(b.values) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a.values), len(b.values))
	}
	return nil
}

// Add returns a+b, pointwise. a and b must share a basis and length.
func (a *Polynomial) Add(b *Polynomial) (*Polynomial, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := make([]fr.Element, len(a.values))
	Parallelize(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i].Add(&a.values[i], &b.values[i])
		}
	})
	return &Polynomial{basis: a.basis, values: out}, nil
}

// Sub returns a-b, pointwise. a and b must share a basis and length.
func (a *Polynomial) Sub(b *Polynomial) (*Polynomial, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := make([]fr.Element, len(a.values))
	Parallelize(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i].Sub(&a.values[i], &b.values[i])
		}
	})
	return &Polynomial{basis: a.basis, values: out}, nil
}

// Mul returns a*b, pointwise. In LAGRANGE or COSET_LAGRANGE_4 this is the
// evaluation-domain product; it is never the polynomial product unless the
// operands' combined degree still fits the domain. a and b must share a
// basis and length.
func (a *Polynomial) Mul(b *Polynomial) (*Polynomial, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := make([]fr.Element, len(a.values))
	Parallelize(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i].Mul(&a.values[i], &b.values[i])
		}
	})
	return &Polynomial{basis: a.basis, values: out}, nil
}

// Div returns a/b, pointwise, using a single batched inversion of b's
// entries rather than one inversion per element. Returns ErrDivisionByZero
// if any entry of b is zero.
func (a *Polynomial) Div(b *Polynomial) (*Polynomial, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	den := clone(b.values)
	for i := range den {
		if den[i].IsZero() {
			return nil, fmt.Errorf("%w: index %d", ErrDivisionByZero, i)
		}
	}
	inv := fr.BatchInvert(den)

	out := make([]fr.Element, len(a.values))
	Parallelize(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i].Mul(&a.values[i], &inv[i])
		}
	})
	return &Polynomial{basis: a.basis, values: out}, nil
}

// Scale returns c*p, pointwise, in whatever basis p is in.
func (p *Polynomial) Scale(c fr.Element) *Polynomial {
	out := make([]fr.Element, len(p.values))
	Parallelize(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i].Mul(&p.values[i], &c)
		}
	})
	return &Polynomial{basis: p.basis, values: out}
}

// AddConst returns p+c, broadcasting the scalar c over every entry.
func (p *Polynomial) AddConst(c fr.Element) *Polynomial {
	out := make([]fr.Element, len(p.values))
	Parallelize(len(out), func(s, e int) {
		for i := s; i < e; i++ {
			out[i].Add(&p.values[i], &c)
		}
	})
	return &Polynomial{basis: p.basis, values: out}
}
