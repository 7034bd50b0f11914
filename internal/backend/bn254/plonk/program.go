package plonk

import "github.com/plonkgo/prover/internal/backend/bn254/poly"

// WireTriple names the left, right, and output wire of one gate row.
type WireTriple struct {
	L, R, O Wire
}

// CommonPreprocessedInput is the circuit front-end's preprocessed output:
// the five selector polynomials and the three permutation polynomials, all
// LAGRANGE, of length equal to the circuit's group order. This module only
// ever reads it; building it is a front-end concern out of this module's
// scope.
type CommonPreprocessedInput struct {
	QL, QR, QM, QO, QC *poly.Polynomial
	S1, S2, S3         *poly.Polynomial
}

// Program is the compiled-circuit interface the prover consumes. A
// concrete circuit front-end, which this module does not implement,
// satisfies it.
type Program interface {
	// GroupOrder is the circuit's domain size n; it must be a power of two.
	GroupOrder() uint64
	// Wires lists one WireTriple per gate row, in row order. Rows beyond
	// len(Wires()) up to GroupOrder() are implicitly all-NoWire padding.
	Wires() []WireTriple
	// PublicAssignments lists, in order, the wires whose witness values
	// are public inputs.
	PublicAssignments() []Wire
	// CommonPreprocessedInput returns the selector and permutation
	// polynomials.
	CommonPreprocessedInput() *CommonPreprocessedInput
}
