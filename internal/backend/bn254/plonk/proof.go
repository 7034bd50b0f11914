package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// Message1 is round 1's outbound message: commitments to the wire
// polynomials.
type Message1 struct {
	A1, B1, C1 kzg.Digest
}

// Message2 is round 2's outbound message: a commitment to the permutation
// grand-product accumulator.
type Message2 struct {
	Z1 kzg.Digest
}

// Message3 is round 3's outbound message: commitments to the three
// quotient-polynomial chunks.
type Message3 struct {
	TLo1, TMid1, THi1 kzg.Digest
}

// Message4 is round 4's outbound message: the wire, permutation, and
// shifted-accumulator evaluations at zeta.
type Message4 struct {
	AEval, BEval, CEval, S1Eval, S2Eval, ZShiftedEval fr.Element
}

// Message5 is round 5's outbound message: commitments to the two opening
// witnesses.
type Message5 struct {
	WZ1, WZw1 kzg.Digest
}

// Proof aggregates the five round messages into the fifteen fields the
// verifier needs: a_1, b_1, c_1, z_1, t_lo_1, t_mid_1, t_hi_1, a_eval,
// b_eval, c_eval, s1_eval, s2_eval, z_shifted_eval, W_z_1, W_zw_1. There is
// no sixteenth field.
type Proof struct {
	Msg1 Message1
	Msg2 Message2
	Msg3 Message3
	Msg4 Message4
	Msg5 Message5
}
