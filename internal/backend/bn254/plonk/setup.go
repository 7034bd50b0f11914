package plonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// Setup is the prover's only view of the trusted setup: committing a
// monomial-basis polynomial of bounded degree to a single KZG digest.
// Verification, opening-proof checking, and SRS generation all belong to a
// collaborator this package never calls; ProvingKey below is the one
// concrete implementation this package ships.
type Setup interface {
	// Commit commits p, which must be MONOMIAL and of degree < n.
	Commit(p *poly.Polynomial, n uint64) (kzg.Digest, error)
}

// ProvingKey wraps a KZG structured reference string's proving half.
type ProvingKey struct {
	SRS kzg.ProvingKey
}

// NewProvingKey wraps an already-generated KZG proving key.
func NewProvingKey(srs kzg.ProvingKey) *ProvingKey {
	return &ProvingKey{SRS: srs}
}

// Commit is linear over F: Commit(a·p + b·q) = a·Commit(p) + b·Commit(q).
// It rejects anything not in MONOMIAL basis, and anything whose degree
// would exceed what n coefficients of the SRS can cover.
func (pk *ProvingKey) Commit(p *poly.Polynomial, n uint64) (kzg.Digest, error) {
	if p.Basis() != poly.Monomial {
		return kzg.Digest{}, fmt.Errorf("setup: commit requires monomial basis, got %s", p.Basis())
	}
	if uint64(p.Len()) > n {
		return kzg.Digest{}, fmt.Errorf("setup: commit length %d exceeds domain size %d", p.Len(), n)
	}
	return kzg.Commit(p.Values(), pk.SRS)
}
