package poly_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

func randVec(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(7*i + 3))
	}
	return out
}

func TestBasisRoundTrip(t *testing.T) {
	r := require.New(t)
	const n = 8
	d := poly.NewDomain(n)

	coeffs := randVec(n)
	mono := poly.NewMonomial(coeffs)

	lag, err := mono.FFT(d)
	r.NoError(err)
	r.Equal(poly.Lagrange, lag.Basis())

	back, err := lag.IFFT(d)
	r.NoError(err)
	r.Equal(poly.Monomial, back.Basis())
	for i := 0; i < n; i++ {
		r.True(coeffs[i].Equal(&back.Values()[i]), "coefficient %d", i)
	}
}

func TestFFTRejectsWrongBasis(t *testing.T) {
	r := require.New(t)
	d := poly.NewDomain(8)
	lag := poly.NewLagrange(randVec(8))
	_, err := lag.FFT(d)
	r.ErrorIs(err, poly.ErrWrongBasis)
}

func TestIFFTRejectsWrongLength(t *testing.T) {
	r := require.New(t)
	d := poly.NewDomain(8)
	lag := poly.NewLagrange(randVec(4))
	_, err := lag.IFFT(d)
	r.ErrorIs(err, poly.ErrLengthMismatch)
}

func TestCosetExtensionRoundTrip(t *testing.T) {
	r := require.New(t)
	const n = 8
	d := poly.NewDomain(n)

	coeffs := make([]fr.Element, n)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i + 1))
	}
	mono := poly.NewMonomial(coeffs)

	var kappa fr.Element
	kappa.SetUint64(5)

	big, err := mono.ToCosetExtended(d, kappa)
	r.NoError(err)
	r.Equal(poly.CosetLagrange4, big.Basis())
	r.Equal(4*n, big.Len())

	back, err := big.FromCosetExtended(d, kappa)
	r.NoError(err)
	r.Equal(poly.Monomial, back.Basis())
	for i := 0; i < n; i++ {
		r.True(coeffs[i].Equal(&back.Values()[i]), "coefficient %d", i)
	}
	for i := n; i < 4*n; i++ {
		r.True(back.Values()[i].IsZero(), "coefficient %d should be zero", i)
	}
}

func TestCosetPointsMatchEvaluation(t *testing.T) {
	r := require.New(t)
	const n = 8
	d := poly.NewDomain(n)

	coeffs := randVec(n)
	mono := poly.NewMonomial(coeffs)
	var kappa fr.Element
	kappa.SetUint64(5)

	big, err := mono.ToCosetExtended(d, kappa)
	r.NoError(err)

	pts := poly.CosetPoints(d, kappa, 4*n)
	lag, err := mono.FFT(d) // computed but not used below
	r.NoError(err)
	_ = lag

	// Direct evaluation at the first coset point must match index 0.
	var got fr.Element
	var pow fr.Element
	pow.SetOne()
	for i := 0; i < n; i++ {
		var term fr.Element
		term.Mul(&coeffs[i], &pow)
		got.Add(&got, &term)
		pow.Mul(&pow, &pts[0])
	}
	r.True(got.Equal(&big.Values()[0]))
}

func TestShiftWraps(t *testing.T) {
	r := require.New(t)
	vals := make([]fr.Element, 8)
	for i := range vals {
		vals[i].SetUint64(uint64(i))
	}
	p := poly.NewCosetLagrange4(vals)
	shifted, err := p.Shift(1)
	r.NoError(err)
	for i := 0; i < 8; i++ {
		r.True(vals[(i+1)%8].Equal(&shifted.Values()[i]))
	}
}

func TestBarycentricEvalAgreesOnDomain(t *testing.T) {
	r := require.New(t)
	const n = 8
	d := poly.NewDomain(n)
	vals := randVec(n)
	lag := poly.NewLagrange(vals)

	omega := d.Omega()
	var omegaPow fr.Element
	omegaPow.SetOne()
	for i := 0; i < n; i++ {
		got, err := lag.BarycentricEval(d, omegaPow)
		r.NoError(err)
		r.True(vals[i].Equal(&got), "index %d", i)
		omegaPow.Mul(&omegaPow, &omega)
	}
}

func TestBarycentricEvalAgreesWithMonomial(t *testing.T) {
	r := require.New(t)
	const n = 8
	d := poly.NewDomain(n)

	coeffs := randVec(n)
	mono := poly.NewMonomial(coeffs)
	lag, err := mono.FFT(d)
	r.NoError(err)

	var x fr.Element
	x.SetUint64(123456789)

	var want, pow fr.Element
	pow.SetOne()
	for i := 0; i < n; i++ {
		var term fr.Element
		term.Mul(&coeffs[i], &pow)
		want.Add(&want, &term)
		pow.Mul(&pow, &x)
	}

	got, err := lag.BarycentricEval(d, x)
	r.NoError(err)
	r.True(want.Equal(&got))
}

func TestArithRejectsBasisMismatch(t *testing.T) {
	r := require.New(t)
	a := poly.NewLagrange(randVec(4))
	b := poly.NewMonomial(randVec(4))
	_, err := a.Add(b)
	r.ErrorIs(err, poly.ErrBasisMismatch)
}

func TestArithRejectsLengthMismatch(t *testing.T) {
	r := require.New(t)
	a := poly.NewLagrange(randVec(4))
	b := poly.NewLagrange(randVec(8))
	_, err := a.Mul(b)
	r.ErrorIs(err, poly.ErrLengthMismatch)
}

func TestDivRejectsZero(t *testing.T) {
	r := require.New(t)
	a := poly.NewLagrange(randVec(4))
	zeros := make([]fr.Element, 4)
	b := poly.NewLagrange(zeros)
	_, err := a.Div(b)
	r.ErrorIs(err, poly.ErrDivisionByZero)
}

func TestDivInvertsMul(t *testing.T) {
	r := require.New(t)
	a := poly.NewLagrange(randVec(8))
	nonZero := make([]fr.Element, 8)
	for i := range nonZero {
		nonZero[i].SetUint64(uint64(i + 1))
	}
	b := poly.NewLagrange(nonZero)

	prod, err := a.Mul(b)
	r.NoError(err)
	back, err := prod.Div(b)
	r.NoError(err)
	for i := 0; i < 8; i++ {
		want := a.At(i)
		got := back.At(i)
		r.True(want.Equal(&got), "index %d", i)
	}
}
