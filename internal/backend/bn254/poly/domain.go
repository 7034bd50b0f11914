package poly

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// Domain bundles the order-n evaluation domain H with the order-4n
// super-domain used for coset-extended quotient evaluation. A Domain here
// is reused across every round of a single proof, so both of its
// fft.Domains keep their precomputed twiddle tables instead of passing
// fft.WithoutPrecompute, unlike a domain built once at setup time and
// discarded.
type Domain struct {
	Small *fft.Domain // cardinality n
	Big   *fft.Domain // cardinality 4n
}

// NewDomain builds the pair of domains a proof over a circuit of group
// order n needs. n must be a power of two; callers (Prove) are expected to
// have checked this already.
func NewDomain(n uint64) *Domain {
	return &Domain{
		Small: fft.NewDomain(n),
		Big:   fft.NewDomain(4 * n),
	}
}

// N returns the size of the small domain H.
func (d *Domain) N() uint64 { return d.Small.Cardinality }

// Omega returns the generator of H.
func (d *Domain) Omega() fr.Element { return d.Small.Generator }

// InSmallDomain reports whether x is an n-th root of unity, i.e. x ∈ H.
// The transcript package rejection-samples κ and ζ with the same x^n = 1
// test, computed on its own rather than through this method.
func (d *Domain) InSmallDomain(x fr.Element) bool {
	var xn, one fr.Element
	one.SetOne()
	xn.Exp(x, new(big.Int).SetUint64(d.N()))
	return xn.Equal(&one)
}
