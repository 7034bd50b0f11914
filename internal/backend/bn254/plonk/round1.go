package plonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

// round1 builds the wire polynomials A, B, C and the public-input
// polynomial PI, checks the gate identity holds everywhere on the domain,
// and commits A, B, C.
//
// The left/right/output wire values are assembled directly from the
// witness and wire layout rather than a raw []fr.Element convention,
// using this package's explicitly basis-tagged poly.Polynomial instead.
func round1(setup Setup, domain *poly.Domain, pk *CommonPreprocessedInput, program Program, witness Witness) (*state, Message1, error) {
	n := int(domain.N())

	wires := program.Wires()
	if len(wires) > n {
		return nil, Message1{}, fmt.Errorf("plonk: %d wire rows exceed domain size %d", len(wires), n)
	}

	aVals := make([]fr.Element, n)
	bVals := make([]fr.Element, n)
	cVals := make([]fr.Element, n)
	for i, w := range wires {
		aVals[i] = witness.value(w.L)
		bVals[i] = witness.value(w.R)
		cVals[i] = witness.value(w.O)
	}
	// Rows beyond len(wires), up to n, stay zero-padded: an all-NoWire row
	// trivially satisfies the gate identity against a zero selector row.

	a := poly.NewLagrange(aVals)
	b := poly.NewLagrange(bVals)
	c := poly.NewLagrange(cVals)

	// PublicAssignments names wires, not row indices; the public-input
	// polynomial's i-th entry is -value(wire) at every row i whose left
	// wire is public. A public wire that appears only in the right or
	// output column adds no entry.
	piVals := make([]fr.Element, n)
	for i, w := range wires {
		if isPublic(w.L, program.PublicAssignments()) {
			v := witness.value(w.L)
			piVals[i].Neg(&v)
		}
	}
	pi := poly.NewLagrange(piVals)

	if err := checkGateIdentity(a, b, c, pi, pk); err != nil {
		return nil, Message1{}, err
	}

	aMono, err := a.IFFT(domain)
	if err != nil {
		return nil, Message1{}, err
	}
	bMono, err := b.IFFT(domain)
	if err != nil {
		return nil, Message1{}, err
	}
	cMono, err := c.IFFT(domain)
	if err != nil {
		return nil, Message1{}, err
	}

	a1, err := setup.Commit(aMono, domain.N())
	if err != nil {
		return nil, Message1{}, fmt.Errorf("plonk: commit a: %w", err)
	}
	b1, err := setup.Commit(bMono, domain.N())
	if err != nil {
		return nil, Message1{}, fmt.Errorf("plonk: commit b: %w", err)
	}
	c1, err := setup.Commit(cMono, domain.N())
	if err != nil {
		return nil, Message1{}, fmt.Errorf("plonk: commit c: %w", err)
	}

	st := &state{domain: domain, pk: pk, pi: pi, a: a, b: b, c: c}
	return st, Message1{A1: a1, B1: b1, C1: c1}, nil
}

func isPublic(w Wire, publics []Wire) bool {
	for _, p := range publics {
		if p == w {
			return true
		}
	}
	return false
}

// checkGateIdentity verifies A·QL + B·QR + A·B·QM + C·QO + PI + QC ≡ 0 over
// every row of the domain. A failure names the first offending row.
func checkGateIdentity(a, b, c, pi *poly.Polynomial, pk *CommonPreprocessedInput) error {
	n := a.Len()
	for i := 0; i < n; i++ {
		ai, bi, ci := a.At(i), b.At(i), c.At(i)

		var acc, term fr.Element
		ql, qr, qm, qo, qc := pk.QL.At(i), pk.QR.At(i), pk.QM.At(i), pk.QO.At(i), pk.QC.At(i)

		term.Mul(&ai, &ql)
		acc.Add(&acc, &term)
		term.Mul(&bi, &qr)
		acc.Add(&acc, &term)
		term.Mul(&ai, &bi)
		term.Mul(&term, &qm)
		acc.Add(&acc, &term)
		term.Mul(&ci, &qo)
		acc.Add(&acc, &term)
		acc.Add(&acc, &pi.Values()[i])
		acc.Add(&acc, &qc)

		if !acc.IsZero() {
			return fmt.Errorf("%w: row %d", ErrGateIdentity, i)
		}
	}
	return nil
}
