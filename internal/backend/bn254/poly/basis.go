package poly

// Basis identifies which of the three representations a Polynomial's
// backing vector is expressed in. Every operation in this package checks
// its operands' Basis before touching their values; there is no implicit
// coercion between bases anywhere in this package.
type Basis int

const (
	// Monomial holds coefficients c_0, c_1, ..., indexed from the constant
	// term.
	Monomial Basis = iota
	// Lagrange holds evaluations at the n-th roots of unity ω^0..ω^{n-1}.
	Lagrange
	// CosetLagrange4 holds evaluations at κ·μ^0..κ·μ^{4n-1}, where μ
	// generates the order-4n subgroup and κ is a coset shift outside the
	// order-n subgroup.
	CosetLagrange4
)

func (b Basis) String() string {
	switch b {
	case Monomial:
		return "monomial"
	case Lagrange:
		return "lagrange"
	case CosetLagrange4:
		return "coset_lagrange_4"
	default:
		return "unknown"
	}
}
