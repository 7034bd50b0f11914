package plonk

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// round3 lifts every round-1/round-2 polynomial plus the selectors and
// permutation polynomials to the order-4n coset, assembles the quotient T
// there, converts it back to monomial, asserts its degree is < 3n, splits
// it into three length-n chunks, and commits them.
//
// The gate term, the two permutation-argument terms, and the L0 boundary
// term stay visible and separately named rather than fused into fewer
// passes, trading a small amount of throughput for a formula a reader can
// match term-by-term against its algebraic definition.
func round3(setup Setup, st *state, alpha, kappa fr.Element) (*state, Message3, error) {
	domain := st.domain
	n := int(domain.N())
	m := 4 * n
	nBig := new(big.Int).SetUint64(uint64(n))

	lift := func(p *poly.Polynomial) (*poly.Polynomial, error) {
		return p.ToCosetExtended(domain, kappa)
	}

	aBig, err := lift(st.a)
	if err != nil {
		return nil, Message3{}, err
	}
	bBig, err := lift(st.b)
	if err != nil {
		return nil, Message3{}, err
	}
	cBig, err := lift(st.c)
	if err != nil {
		return nil, Message3{}, err
	}
	piBig, err := lift(st.pi)
	if err != nil {
		return nil, Message3{}, err
	}
	zBig, err := lift(st.z)
	if err != nil {
		return nil, Message3{}, err
	}
	zShiftedBig, err := zBig.Shift(4)
	if err != nil {
		return nil, Message3{}, err
	}
	qlBig, err := lift(st.pk.QL)
	if err != nil {
		return nil, Message3{}, err
	}
	qrBig, err := lift(st.pk.QR)
	if err != nil {
		return nil, Message3{}, err
	}
	qmBig, err := lift(st.pk.QM)
	if err != nil {
		return nil, Message3{}, err
	}
	qoBig, err := lift(st.pk.QO)
	if err != nil {
		return nil, Message3{}, err
	}
	qcBig, err := lift(st.pk.QC)
	if err != nil {
		return nil, Message3{}, err
	}
	s1Big, err := lift(st.pk.S1)
	if err != nil {
		return nil, Message3{}, err
	}
	s2Big, err := lift(st.pk.S2)
	if err != nil {
		return nil, Message3{}, err
	}
	s3Big, err := lift(st.pk.S3)
	if err != nil {
		return nil, Message3{}, err
	}

	l0Lagrange := make([]fr.Element, n)
	l0Lagrange[0].SetOne()
	l0Big, err := lift(poly.NewLagrange(l0Lagrange))
	if err != nil {
		return nil, Message3{}, err
	}

	cosetPts := poly.CosetPoints(domain, kappa, m)

	zhBig := make([]fr.Element, m)
	var one fr.Element
	one.SetOne()
	for i := 0; i < m; i++ {
		zhBig[i].Exp(cosetPts[i], nBig)
		zhBig[i].Sub(&zhBig[i], &one)
	}
	zhInv := fr.BatchInvert(zhBig)

	var two, three, alphaSq fr.Element
	two.SetUint64(2)
	three.SetUint64(3)
	alphaSq.Mul(&alpha, &alpha)

	quot := make([]fr.Element, m)
	poly.Parallelize(m, func(s, e int) {
		for i := s; i < e; i++ {
			ai, bi, ci := aBig.At(i), bBig.At(i), cBig.At(i)

			var gate, term fr.Element
			term.Mul(&ai, &qlBig.Values()[i])
			gate.Add(&gate, &term)
			term.Mul(&bi, &qrBig.Values()[i])
			gate.Add(&gate, &term)
			term.Mul(&ai, &bi)
			term.Mul(&term, &qmBig.Values()[i])
			gate.Add(&gate, &term)
			term.Mul(&ci, &qoBig.Values()[i])
			gate.Add(&gate, &term)
			gate.Add(&gate, &piBig.Values()[i])
			gate.Add(&gate, &qcBig.Values()[i])

			var x2, x3 fr.Element
			x2.Mul(&two, &cosetPts[i])
			x3.Mul(&three, &cosetPts[i])

			permNum := rlc(ai, cosetPts[i], st.beta, st.gamma)
			permNum2 := rlc(bi, x2, st.beta, st.gamma)
			permNum3 := rlc(ci, x3, st.beta, st.gamma)
			permNum.Mul(&permNum, &permNum2)
			permNum.Mul(&permNum, &permNum3)

			permDen := rlc(ai, s1Big.Values()[i], st.beta, st.gamma)
			permDen2 := rlc(bi, s2Big.Values()[i], st.beta, st.gamma)
			permDen3 := rlc(ci, s3Big.Values()[i], st.beta, st.gamma)
			permDen.Mul(&permDen, &permDen2)
			permDen.Mul(&permDen, &permDen3)

			var permTerm, t1term, t2term fr.Element
			t1term.Mul(&permNum, &zBig.Values()[i])
			t2term.Mul(&permDen, &zShiftedBig.Values()[i])
			permTerm.Sub(&t1term, &t2term)
			permTerm.Mul(&permTerm, &alpha)

			var boundary, zMinusOne fr.Element
			zMinusOne.Sub(&zBig.Values()[i], &one)
			boundary.Mul(&zMinusOne, &l0Big.Values()[i])
			boundary.Mul(&boundary, &alphaSq)

			var numerator fr.Element
			numerator.Add(&gate, &permTerm)
			numerator.Add(&numerator, &boundary)

			quot[i].Mul(&numerator, &zhInv[i])
		}
	})

	quotBig := poly.NewCosetLagrange4(quot)
	quotMono, err := quotBig.FromCosetExtended(domain, kappa)
	if err != nil {
		return nil, Message3{}, err
	}

	for i := 3 * n; i < m; i++ {
		if !quotMono.Values()[i].IsZero() {
			return nil, Message3{}, fmt.Errorf("%w: coefficient %d is non-zero", ErrQuotientDegree, i)
		}
	}

	t1Mono := poly.NewMonomial(quotMono.Values()[0:n])
	t2Mono := poly.NewMonomial(quotMono.Values()[n : 2*n])
	t3Mono := poly.NewMonomial(quotMono.Values()[2*n : 3*n])

	t1, err := t1Mono.FFT(domain)
	if err != nil {
		return nil, Message3{}, err
	}
	t2, err := t2Mono.FFT(domain)
	if err != nil {
		return nil, Message3{}, err
	}
	t3, err := t3Mono.FFT(domain)
	if err != nil {
		return nil, Message3{}, err
	}

	t1AtKappa, err := t1.BarycentricEval(domain, kappa)
	if err != nil {
		return nil, Message3{}, err
	}
	t2AtKappa, err := t2.BarycentricEval(domain, kappa)
	if err != nil {
		return nil, Message3{}, err
	}
	t3AtKappa, err := t3.BarycentricEval(domain, kappa)
	if err != nil {
		return nil, Message3{}, err
	}

	var kappaN, kappa2N, lhs, term2 fr.Element
	kappaN.Exp(kappa, nBig)
	kappa2N.Mul(&kappaN, &kappaN)
	lhs = t1AtKappa
	term2.Mul(&kappaN, &t2AtKappa)
	lhs.Add(&lhs, &term2)
	term2.Mul(&kappa2N, &t3AtKappa)
	lhs.Add(&lhs, &term2)

	if !lhs.Equal(&quot[0]) {
		return nil, Message3{}, fmt.Errorf("%w: got %s want %s", ErrCrossCheck, lhs.String(), quot[0].String())
	}

	t1ForCommit, err := t1.IFFT(domain)
	if err != nil {
		return nil, Message3{}, err
	}
	t2ForCommit, err := t2.IFFT(domain)
	if err != nil {
		return nil, Message3{}, err
	}
	t3ForCommit, err := t3.IFFT(domain)
	if err != nil {
		return nil, Message3{}, err
	}

	tLo1, err := setup.Commit(t1ForCommit, domain.N())
	if err != nil {
		return nil, Message3{}, fmt.Errorf("plonk: commit t_lo: %w", err)
	}
	tMid1, err := setup.Commit(t2ForCommit, domain.N())
	if err != nil {
		return nil, Message3{}, fmt.Errorf("plonk: commit t_mid: %w", err)
	}
	tHi1, err := setup.Commit(t3ForCommit, domain.N())
	if err != nil {
		return nil, Message3{}, fmt.Errorf("plonk: commit t_hi: %w", err)
	}

	next := st.clone()
	next.alpha = alpha
	next.kappa = kappa
	next.t1, next.t2, next.t3 = t1, t2, t3

	return next, Message3{TLo1: tLo1, TMid1: tMid1, THi1: tHi1}, nil
}
