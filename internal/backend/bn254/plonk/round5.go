package plonk

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// round5 builds the linearization polynomial R, asserts it vanishes at
// zeta, then builds and commits the two opening witnesses W_z and W_zw.
func round5(setup Setup, st *state, v fr.Element) (Message5, error) {
	domain := st.domain
	n := int(domain.N())
	m := 4 * n
	kappa, zeta := st.kappa, st.zeta
	omega := domain.Omega()
	nBig := new(big.Int).SetUint64(uint64(n))

	lift := func(p *poly.Polynomial) (*poly.Polynomial, error) {
		return p.ToCosetExtended(domain, kappa)
	}

	piEval, err := st.pi.BarycentricEval(domain, zeta)
	if err != nil {
		return Message5{}, err
	}

	l0Lagrange := make([]fr.Element, n)
	l0Lagrange[0].SetOne()
	l0Eval, err := poly.NewLagrange(l0Lagrange).BarycentricEval(domain, zeta)
	if err != nil {
		return Message5{}, err
	}

	var zhEval, one fr.Element
	one.SetOne()
	zhEval.Exp(zeta, nBig)
	zhEval.Sub(&zhEval, &one)

	t1Big, err := lift(st.t1)
	if err != nil {
		return Message5{}, err
	}
	t2Big, err := lift(st.t2)
	if err != nil {
		return Message5{}, err
	}
	t3Big, err := lift(st.t3)
	if err != nil {
		return Message5{}, err
	}
	qlBig, err := lift(st.pk.QL)
	if err != nil {
		return Message5{}, err
	}
	qrBig, err := lift(st.pk.QR)
	if err != nil {
		return Message5{}, err
	}
	qmBig, err := lift(st.pk.QM)
	if err != nil {
		return Message5{}, err
	}
	qoBig, err := lift(st.pk.QO)
	if err != nil {
		return Message5{}, err
	}
	qcBig, err := lift(st.pk.QC)
	if err != nil {
		return Message5{}, err
	}
	zBig, err := lift(st.z)
	if err != nil {
		return Message5{}, err
	}
	s3Big, err := lift(st.pk.S3)
	if err != nil {
		return Message5{}, err
	}

	a, b, c := st.aEval, st.bEval, st.cEval
	s1e, s2e := st.s1Eval, st.s2Eval
	zShift := st.zShiftedEval
	alpha, beta, gamma := st.alpha, st.beta, st.gamma

	var zetaN, zeta2N, alphaSq fr.Element
	zetaN.Exp(zeta, nBig)
	zeta2N.Mul(&zetaN, &zetaN)
	alphaSq.Mul(&alpha, &alpha)

	var twoZeta, threeZeta fr.Element
	twoZeta.SetUint64(2)
	twoZeta.Mul(&twoZeta, &zeta)
	threeZeta.SetUint64(3)
	threeZeta.Mul(&threeZeta, &zeta)

	betaZeta := rlc(a, zeta, beta, gamma)
	rTerm2 := rlc(b, twoZeta, beta, gamma)
	rTerm3 := rlc(c, threeZeta, beta, gamma)
	var numFactor fr.Element
	numFactor.Mul(&betaZeta, &rTerm2)
	numFactor.Mul(&numFactor, &rTerm3)
	numFactor.Mul(&numFactor, &alpha)

	denFactor1 := rlc(a, s1e, beta, gamma)
	denFactor2 := rlc(b, s2e, beta, gamma)
	var denPrefix fr.Element
	denPrefix.Mul(&denFactor1, &denFactor2)
	denPrefix.Mul(&denPrefix, &alpha)
	denPrefix.Mul(&denPrefix, &zShift)

	rVals := make([]fr.Element, m)
	poly.Parallelize(m, func(s, e int) {
		for i := s; i < e; i++ {
			var gate, term fr.Element
			term.Mul(&a, &qlBig.Values()[i])
			gate.Add(&gate, &term)
			term.Mul(&b, &qrBig.Values()[i])
			gate.Add(&gate, &term)
			term.Mul(&a, &b)
			term.Mul(&term, &qmBig.Values()[i])
			gate.Add(&gate, &term)
			term.Mul(&c, &qoBig.Values()[i])
			gate.Add(&gate, &term)
			gate.Add(&gate, &piEval)
			gate.Add(&gate, &qcBig.Values()[i])

			var permPos fr.Element
			permPos.Mul(&numFactor, &zBig.Values()[i])

			var thirdFactor, permNeg fr.Element
			thirdFactor.Mul(&beta, &s3Big.Values()[i])
			thirdFactor.Add(&thirdFactor, &c)
			thirdFactor.Add(&thirdFactor, &gamma)
			permNeg.Mul(&denPrefix, &thirdFactor)

			var boundary, zMinusOne fr.Element
			zMinusOne.Sub(&zBig.Values()[i], &one)
			boundary.Mul(&zMinusOne, &l0Eval)
			boundary.Mul(&boundary, &alphaSq)

			var quotTerm, t2term, t3term fr.Element
			quotTerm = t1Big.Values()[i]
			t2term.Mul(&zetaN, &t2Big.Values()[i])
			quotTerm.Add(&quotTerm, &t2term)
			t3term.Mul(&zeta2N, &t3Big.Values()[i])
			quotTerm.Add(&quotTerm, &t3term)
			quotTerm.Mul(&quotTerm, &zhEval)

			var r fr.Element
			r.Add(&gate, &permPos)
			r.Sub(&r, &permNeg)
			r.Add(&r, &boundary)
			r.Sub(&r, &quotTerm)
			rVals[i] = r
		}
	})

	rBig := poly.NewCosetLagrange4(rVals)
	rMono, err := rBig.FromCosetExtended(domain, kappa)
	if err != nil {
		return Message5{}, err
	}

	rTruncMono := poly.NewMonomial(rMono.Values()[:n])
	r, err := rTruncMono.FFT(domain)
	if err != nil {
		return Message5{}, err
	}

	rAtZeta, err := r.BarycentricEval(domain, zeta)
	if err != nil {
		return Message5{}, err
	}
	if !rAtZeta.IsZero() {
		return Message5{}, fmt.Errorf("%w: R(zeta) = %s", ErrLinearization, rAtZeta.String())
	}

	aBig, err := lift(st.a)
	if err != nil {
		return Message5{}, err
	}
	bBig, err := lift(st.b)
	if err != nil {
		return Message5{}, err
	}
	cBig, err := lift(st.c)
	if err != nil {
		return Message5{}, err
	}
	s1Big, err := lift(st.pk.S1)
	if err != nil {
		return Message5{}, err
	}
	s2Big, err := lift(st.pk.S2)
	if err != nil {
		return Message5{}, err
	}
	rBigForW, err := lift(r)
	if err != nil {
		return Message5{}, err
	}

	cosetPts := poly.CosetPoints(domain, kappa, m)

	var v2, v3, v4, v5 fr.Element
	v2.Mul(&v, &v)
	v3.Mul(&v2, &v)
	v4.Mul(&v3, &v)
	v5.Mul(&v4, &v)

	wzNumerator := make([]fr.Element, m)
	wzDenominator := make([]fr.Element, m)
	poly.Parallelize(m, func(s, e int) {
		for i := s; i < e; i++ {
			acc := rBigForW.Values()[i]

			var t fr.Element
			t.Sub(&aBig.Values()[i], &a)
			t.Mul(&t, &v)
			acc.Add(&acc, &t)

			t.Sub(&bBig.Values()[i], &b)
			t.Mul(&t, &v2)
			acc.Add(&acc, &t)

			t.Sub(&cBig.Values()[i], &c)
			t.Mul(&t, &v3)
			acc.Add(&acc, &t)

			t.Sub(&s1Big.Values()[i], &s1e)
			t.Mul(&t, &v4)
			acc.Add(&acc, &t)

			t.Sub(&s2Big.Values()[i], &s2e)
			t.Mul(&t, &v5)
			acc.Add(&acc, &t)

			wzNumerator[i] = acc
			wzDenominator[i].Sub(&cosetPts[i], &zeta)
		}
	})

	for i, d := range wzDenominator {
		if d.IsZero() {
			return Message5{}, fmt.Errorf("%w: coset point %d collided with zeta", ErrChallengeCollision, i)
		}
	}
	wzInv := fr.BatchInvert(wzDenominator)
	wzVals := make([]fr.Element, m)
	poly.Parallelize(m, func(s, e int) {
		for i := s; i < e; i++ {
			wzVals[i].Mul(&wzNumerator[i], &wzInv[i])
		}
	})

	wzBig := poly.NewCosetLagrange4(wzVals)
	wzMono, err := wzBig.FromCosetExtended(domain, kappa)
	if err != nil {
		return Message5{}, err
	}
	for i := n; i < m; i++ {
		if !wzMono.Values()[i].IsZero() {
			return Message5{}, fmt.Errorf("%w: W_z coefficient %d is non-zero", ErrDegreeOverflow, i)
		}
	}
	wzTrunc := poly.NewMonomial(wzMono.Values()[:n])
	wz1, err := setup.Commit(wzTrunc, domain.N())
	if err != nil {
		return Message5{}, fmt.Errorf("plonk: commit W_z: %w", err)
	}

	var zetaOmega fr.Element
	zetaOmega.Mul(&zeta, &omega)

	wzwNumerator := make([]fr.Element, m)
	wzwDenominator := make([]fr.Element, m)
	poly.Parallelize(m, func(s, e int) {
		for i := s; i < e; i++ {
			wzwNumerator[i].Sub(&zBig.Values()[i], &zShift)
			wzwDenominator[i].Sub(&cosetPts[i], &zetaOmega)
		}
	})
	for i, d := range wzwDenominator {
		if d.IsZero() {
			return Message5{}, fmt.Errorf("%w: coset point %d collided with zeta*omega", ErrChallengeCollision, i)
		}
	}
	wzwInv := fr.BatchInvert(wzwDenominator)
	wzwVals := make([]fr.Element, m)
	poly.Parallelize(m, func(s, e int) {
		for i := s; i < e; i++ {
			wzwVals[i].Mul(&wzwNumerator[i], &wzwInv[i])
		}
	})

	wzwBig := poly.NewCosetLagrange4(wzwVals)
	wzwMono, err := wzwBig.FromCosetExtended(domain, kappa)
	if err != nil {
		return Message5{}, err
	}
	for i := n; i < m; i++ {
		if !wzwMono.Values()[i].IsZero() {
			return Message5{}, fmt.Errorf("%w: W_zw coefficient %d is non-zero", ErrDegreeOverflow, i)
		}
	}
	wzwTrunc := poly.NewMonomial(wzwMono.Values()[:n])
	wzw1, err := setup.Commit(wzwTrunc, domain.N())
	if err != nil {
		return Message5{}, fmt.Errorf("plonk: commit W_zw: %w", err)
	}

	return Message5{WZ1: wz1, WZw1: wzw1}, nil
}
