package plonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// newTestSetup builds an insecure KZG proving key for a domain of size n,
// using a fixed toxic waste value. Real deployments generate alpha through
// an MPC ceremony, never a literal constant.
func newTestSetup(n uint64) *ProvingKey {
	alpha := big.NewInt(987654321)
	srs, err := kzg.NewSRS(n, alpha)
	if err != nil {
		panic(err)
	}
	return NewProvingKey(srs.Pk)
}
