package plonk

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// round4 evaluates A, B, C, S1, S2 at zeta and Z at zeta·omega, via
// barycentric evaluation against the stored LAGRANGE vectors.
func round4(st *state, zeta fr.Element) (*state, Message4, error) {
	domain := st.domain
	omega := domain.Omega()

	aEval, err := st.a.BarycentricEval(domain, zeta)
	if err != nil {
		return nil, Message4{}, err
	}
	bEval, err := st.b.BarycentricEval(domain, zeta)
	if err != nil {
		return nil, Message4{}, err
	}
	cEval, err := st.c.BarycentricEval(domain, zeta)
	if err != nil {
		return nil, Message4{}, err
	}
	s1Eval, err := st.pk.S1.BarycentricEval(domain, zeta)
	if err != nil {
		return nil, Message4{}, err
	}
	s2Eval, err := st.pk.S2.BarycentricEval(domain, zeta)
	if err != nil {
		return nil, Message4{}, err
	}

	var zetaOmega fr.Element
	zetaOmega.Mul(&zeta, &omega)
	zShiftedEval, err := st.z.BarycentricEval(domain, zetaOmega)
	if err != nil {
		return nil, Message4{}, err
	}

	next := st.clone()
	next.zeta = zeta
	next.aEval, next.bEval, next.cEval = aEval, bEval, cEval
	next.s1Eval, next.s2Eval, next.zShiftedEval = s1Eval, s2Eval, zShiftedEval

	return next, Message4{
		AEval:        aEval,
		BEval:        bEval,
		CEval:        cEval,
		S1Eval:       s1Eval,
		S2Eval:       s2Eval,
		ZShiftedEval: zShiftedEval,
	}, nil
}
