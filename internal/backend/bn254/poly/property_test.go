package poly_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// TestPolynomialBasisRoundTripProperty checks, over many random coefficient
// vectors, that FFT/IFFT and ToCosetExtended/FromCosetExtended are mutual
// inverses, the one property every other test in this package exercises
// only at a handful of fixed points.
func TestPolynomialBasisRoundTripProperty(t *testing.T) {
	const n = 16
	d := poly.NewDomain(n)

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	coeffsGen := gen.SliceOfN(n, gen.UInt64Range(0, 1<<40)).Map(func(raw []uint64) []fr.Element {
		out := make([]fr.Element, n)
		for i, v := range raw {
			out[i].SetUint64(v)
		}
		return out
	})

	properties.Property("FFT then IFFT is the identity on MONOMIAL", prop.ForAll(
		func(coeffs []fr.Element) bool {
			mono := poly.NewMonomial(coeffs)
			lag, err := mono.FFT(d)
			if err != nil {
				return false
			}
			back, err := lag.IFFT(d)
			if err != nil {
				return false
			}
			for i := range coeffs {
				if !coeffs[i].Equal(&back.Values()[i]) {
					return false
				}
			}
			return true
		},
		coeffsGen,
	))

	properties.Property("ToCosetExtended then FromCosetExtended is the identity on MONOMIAL", prop.ForAll(
		func(coeffs []fr.Element) bool {
			var kappa fr.Element
			kappa.SetUint64(7)

			mono := poly.NewMonomial(coeffs)
			big, err := mono.ToCosetExtended(d, kappa)
			if err != nil {
				return false
			}
			back, err := big.FromCosetExtended(d, kappa)
			if err != nil {
				return false
			}
			for i := range coeffs {
				if !coeffs[i].Equal(&back.Values()[i]) {
					return false
				}
			}
			return true
		},
		coeffsGen,
	))

	properties.TestingRun(t)
}
