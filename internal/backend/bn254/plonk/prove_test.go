package plonk

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
)

const testDomainSize = 8

// testProgram is the minimal Program a hand-built test circuit needs; a
// real circuit front-end (out of this module's scope) would derive one
// from a constraint system instead.
type testProgram struct {
	n       uint64
	wires   []WireTriple
	publics []Wire
	cpi     *CommonPreprocessedInput
}

func (p *testProgram) GroupOrder() uint64                             { return p.n }
func (p *testProgram) Wires() []WireTriple                            { return p.wires }
func (p *testProgram) PublicAssignments() []Wire                      { return p.publics }
func (p *testProgram) CommonPreprocessedInput() *CommonPreprocessedInput { return p.cpi }

func felt(x int64) fr.Element {
	var e fr.Element
	if x < 0 {
		var u fr.Element
		u.SetUint64(uint64(-x))
		e.Neg(&u)
		return e
	}
	e.SetUint64(uint64(x))
	return e
}

func lagrange(n uint64, rows map[int]int64) *poly.Polynomial {
	vals := make([]fr.Element, n)
	for i, v := range rows {
		vals[i] = felt(v)
	}
	return poly.NewLagrange(vals)
}

// identityPermutation builds S1, S2, S3 as the trivial identity copy
// permutation: column c, row i, maps to itself, so the round-2 grand
// product is 1 at every step regardless of the witness.
func identityPermutation(n uint64) (s1, s2, s3 *poly.Polynomial) {
	d := poly.NewDomain(n)
	omega := d.Omega()

	s1Vals := make([]fr.Element, n)
	s2Vals := make([]fr.Element, n)
	s3Vals := make([]fr.Element, n)

	var pow, two, three fr.Element
	pow.SetOne()
	two.SetUint64(2)
	three.SetUint64(3)
	for i := uint64(0); i < n; i++ {
		s1Vals[i] = pow
		s2Vals[i].Mul(&two, &pow)
		s3Vals[i].Mul(&three, &pow)
		pow.Mul(&pow, &omega)
	}
	return poly.NewLagrange(s1Vals), poly.NewLagrange(s2Vals), poly.NewLagrange(s3Vals)
}

func zero(n uint64) *poly.Polynomial {
	return poly.NewLagrange(make([]fr.Element, n))
}

// identityCircuit builds the a*1 = a gate at row 0: QL=1, QO=-1, everything
// else zero, with an otherwise-unconstrained identity permutation.
func identityCircuit(a int64) (*testProgram, Witness) {
	n := uint64(testDomainSize)
	ql := lagrange(n, map[int]int64{0: 1})
	qr, qm, qc := zero(n), zero(n), zero(n)
	qo := lagrange(n, map[int]int64{0: -1})
	s1, s2, s3 := identityPermutation(n)

	prog := &testProgram{
		n:     n,
		wires: []WireTriple{{L: "a", R: NoWire, O: "a"}},
		cpi: &CommonPreprocessedInput{
			QL: ql, QR: qr, QM: qm, QO: qo, QC: qc,
			S1: s1, S2: s2, S3: s3,
		},
	}
	return prog, Witness{"a": felt(a)}
}

// additionCircuit builds x + y = z at row 0: QL=1, QR=1, QO=-1.
func additionCircuit(x, y, z int64) (*testProgram, Witness) {
	n := uint64(testDomainSize)
	ql := lagrange(n, map[int]int64{0: 1})
	qr := lagrange(n, map[int]int64{0: 1})
	qm, qc := zero(n), zero(n)
	qo := lagrange(n, map[int]int64{0: -1})
	s1, s2, s3 := identityPermutation(n)

	prog := &testProgram{
		n:     n,
		wires: []WireTriple{{L: "x", R: "y", O: "z"}},
		cpi: &CommonPreprocessedInput{
			QL: ql, QR: qr, QM: qm, QO: qo, QC: qc,
			S1: s1, S2: s2, S3: s3,
		},
	}
	return prog, Witness{"x": felt(x), "y": felt(y), "z": felt(z)}
}

// publicInputCircuit builds a single-row circuit whose only constraint is
// that the public wire p equals itself (QL=1, the rest zero, and PI takes
// care of binding p's value): -p via the public-input polynomial plus
// QL*p must vanish, i.e. the gate identity is p - p = 0 regardless of
// value, so this circuit's only purpose is exercising PublicAssignments'
// wiring into the PI polynomial, not constraining p's value against
// anything else.
func publicInputCircuit(p int64) (*testProgram, Witness) {
	n := uint64(testDomainSize)
	ql := lagrange(n, map[int]int64{0: 1})
	qr, qm, qo, qc := zero(n), zero(n), zero(n), zero(n)
	s1, s2, s3 := identityPermutation(n)

	prog := &testProgram{
		n:       n,
		wires:   []WireTriple{{L: "p", R: NoWire, O: NoWire}},
		publics: []Wire{"p"},
		cpi: &CommonPreprocessedInput{
			QL: ql, QR: qr, QM: qm, QO: qo, QC: qc,
			S1: s1, S2: s2, S3: s3,
		},
	}
	return prog, Witness{"p": felt(p)}
}

// permutationCircuit forces cell (column L, row 0) and (column R, row 1)
// into the same copy-constraint class by swapping their identity labels
// in S1/S2: S1[0] takes the label identityPermutation would otherwise
// give (R, 1), and S2[1] takes the label it would otherwise give (L, 0).
// No gate selector is set, so only the permutation argument is exercised.
func permutationCircuit(x, y int64) (*testProgram, Witness) {
	n := uint64(testDomainSize)
	ql, qr, qm, qo, qc := zero(n), zero(n), zero(n), zero(n), zero(n)
	s1, s2, s3 := identityPermutation(n)

	s1Vals := append([]fr.Element{}, s1.Values()...)
	s2Vals := append([]fr.Element{}, s2.Values()...)
	s1Vals[0] = s2.Values()[1]
	s2Vals[1] = s1.Values()[0]
	s1 = poly.NewLagrange(s1Vals)
	s2 = poly.NewLagrange(s2Vals)

	prog := &testProgram{
		n:     n,
		wires: []WireTriple{{L: "x", R: NoWire, O: NoWire}, {L: NoWire, R: "y", O: NoWire}},
		cpi: &CommonPreprocessedInput{
			QL: ql, QR: qr, QM: qm, QO: qo, QC: qc,
			S1: s1, S2: s2, S3: s3,
		},
	}
	return prog, Witness{"x": felt(x), "y": felt(y)}
}

func TestProveIdentityCircuit(t *testing.T) {
	setup := newTestSetup(testDomainSize)
	prog, wit := identityCircuit(7)

	_, err := Prove(setup, prog, wit)
	require.NoError(t, err)
}

func TestProveAdditionCircuit(t *testing.T) {
	setup := newTestSetup(testDomainSize)

	prog, wit := additionCircuit(3, 5, 8)
	_, err := Prove(setup, prog, wit)
	require.NoError(t, err)

	wit["z"] = felt(9)
	_, err = Prove(setup, prog, wit)
	require.ErrorIs(t, err, ErrGateIdentity)
}

func TestProvePermutationCircuit(t *testing.T) {
	setup := newTestSetup(testDomainSize)

	prog, wit := permutationCircuit(11, 11)
	_, err := Prove(setup, prog, wit)
	require.NoError(t, err)

	prog2, wit2 := permutationCircuit(11, 12)
	_, err = Prove(setup, prog2, wit2)
	require.ErrorIs(t, err, ErrPermutationWraparound)
}

func TestProvePublicInputBinding(t *testing.T) {
	setup := newTestSetup(testDomainSize)

	progA, witA := publicInputCircuit(42)
	proofA, err := Prove(setup, progA, witA)
	require.NoError(t, err)

	progB, witB := publicInputCircuit(43)
	proofB, err := Prove(setup, progB, witB)
	require.NoError(t, err)

	require.False(t, proofA.Msg1.A1.Equal(&proofB.Msg1.A1),
		"changing the public wire's value must change its committed wire polynomial")
}

func TestProveIsDeterministic(t *testing.T) {
	setup := newTestSetup(testDomainSize)
	prog, wit := additionCircuit(3, 5, 8)

	p1, err := Prove(setup, prog, wit)
	require.NoError(t, err)
	p2, err := Prove(setup, prog, wit)
	require.NoError(t, err)

	var buf1, buf2 bytes.Buffer
	_, err = p1.WriteTo(&buf1)
	require.NoError(t, err)
	_, err = p2.WriteTo(&buf2)
	require.NoError(t, err)
	require.Equal(t, buf1.Bytes(), buf2.Bytes())
}
