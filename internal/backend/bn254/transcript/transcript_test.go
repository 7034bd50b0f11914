package transcript_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/stretchr/testify/require"

	"github.com/plonkgo/prover/internal/backend/bn254/transcript"
)

func digest(b byte) kzg.Digest {
	var d kzg.Digest
	// Digest is a curve point; every call returns the zero value and b is
	// unused. The tests only rely on determinism and on distinct labels
	// producing distinct challenges, not on the point being on-curve.
	_ = b
	return d
}

func TestRoundsAreDeterministic(t *testing.T) {
	r := require.New(t)

	run := func() (beta, gamma, alpha, kappa, zeta, v fr.Element) {
		tr, err := transcript.New("plonk", nil, nil)
		r.NoError(err)
		beta, gamma, err = tr.Round1(digest(1), digest(2), digest(3))
		r.NoError(err)
		alpha, kappa, err = tr.Round2(digest(4), 8)
		r.NoError(err)
		zeta, err = tr.Round3(digest(5), digest(6), digest(7), 8)
		r.NoError(err)
		var a, b, c, s1, s2, zs fr.Element
		a.SetUint64(1)
		b.SetUint64(2)
		c.SetUint64(3)
		s1.SetUint64(4)
		s2.SetUint64(5)
		zs.SetUint64(6)
		v, err = tr.Round4(a, b, c, s1, s2, zs)
		r.NoError(err)
		return
	}

	beta1, gamma1, alpha1, kappa1, zeta1, v1 := run()
	beta2, gamma2, alpha2, kappa2, zeta2, v2 := run()

	r.True(beta1.Equal(&beta2))
	r.True(gamma1.Equal(&gamma2))
	r.True(alpha1.Equal(&alpha2))
	r.True(kappa1.Equal(&kappa2))
	r.True(zeta1.Equal(&zeta2))
	r.True(v1.Equal(&v2))
}

func TestChallengesAreDistinct(t *testing.T) {
	r := require.New(t)
	tr, err := transcript.New("plonk", nil, nil)
	r.NoError(err)

	beta, gamma, err := tr.Round1(digest(1), digest(2), digest(3))
	r.NoError(err)
	r.False(beta.Equal(&gamma))

	alpha, kappa, err := tr.Round2(digest(4), 8)
	r.NoError(err)
	r.False(alpha.Equal(&kappa))
	r.False(kappa.Equal(&beta))
}

func TestKappaAndZetaNeverLandInTheSmallDomain(t *testing.T) {
	r := require.New(t)
	tr, err := transcript.New("plonk", nil, nil)
	r.NoError(err)

	_, _, err = tr.Round1(digest(1), digest(2), digest(3))
	r.NoError(err)
	_, kappa, err := tr.Round2(digest(4), 8)
	r.NoError(err)
	zeta, err := tr.Round3(digest(5), digest(6), digest(7), 8)
	r.NoError(err)

	var one, kn, zn fr.Element
	one.SetOne()
	kn.Exp(kappa, bigEight())
	r.False(kn.Equal(&one))
	zn.Exp(zeta, bigEight())
	r.False(zn.Equal(&one))
}

func bigEight() *big.Int {
	return big.NewInt(8)
}
