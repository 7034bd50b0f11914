package plonk

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// WriteTo and ReadFrom give Proof ordinary Go marshaling hygiene: the
// determinism scenario needs to serialize a proof to compare it against a
// regenerated one. This package does not define a
// wire format for interop with other implementations.

func writeBytes(w io.Writer, b []byte) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(4 + n), err
}

func readBytes(r io.Reader) ([]byte, int64, error) {
	var l uint32
	if err := binary.Read(r, binary.BigEndian, &l); err != nil {
		return nil, 0, err
	}
	buf := make([]byte, l)
	n, err := io.ReadFull(r, buf)
	return buf, int64(4 + n), err
}

// WriteTo serializes the proof's fifteen fields, length-prefixed: first the
// nine digests (a_1, b_1, c_1, z_1, t_lo_1, t_mid_1, t_hi_1, W_z_1, W_zw_1),
// then the six evaluations (a_eval, b_eval, c_eval, s1_eval, s2_eval,
// z_shifted_eval).
func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	var total int64

	digests := []kzg.Digest{
		p.Msg1.A1, p.Msg1.B1, p.Msg1.C1,
		p.Msg2.Z1,
		p.Msg3.TLo1, p.Msg3.TMid1, p.Msg3.THi1,
		p.Msg5.WZ1, p.Msg5.WZw1,
	}
	for _, d := range digests {
		n, err := writeBytes(w, d.Marshal())
		total += n
		if err != nil {
			return total, fmt.Errorf("plonk: write proof: %w", err)
		}
	}

	evals := []fr.Element{
		p.Msg4.AEval, p.Msg4.BEval, p.Msg4.CEval,
		p.Msg4.S1Eval, p.Msg4.S2Eval, p.Msg4.ZShiftedEval,
	}
	for _, e := range evals {
		b := e.Bytes()
		n, err := writeBytes(w, b[:])
		total += n
		if err != nil {
			return total, fmt.Errorf("plonk: write proof: %w", err)
		}
	}

	return total, nil
}

// ReadFrom deserializes a proof written by WriteTo, in the same field
// order.
func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	readDigest := func() (kzg.Digest, error) {
		b, n, err := readBytes(r)
		total += n
		if err != nil {
			return kzg.Digest{}, err
		}
		var d kzg.Digest
		if _, err := d.SetBytes(b); err != nil {
			return kzg.Digest{}, err
		}
		return d, nil
	}
	readEval := func() (fr.Element, error) {
		b, n, err := readBytes(r)
		total += n
		if err != nil {
			return fr.Element{}, err
		}
		var e fr.Element
		e.SetBytes(b)
		return e, nil
	}

	var err error
	if p.Msg1.A1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg1.B1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg1.C1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg2.Z1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg3.TLo1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg3.TMid1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg3.THi1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg5.WZ1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg5.WZw1, err = readDigest(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg4.AEval, err = readEval(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg4.BEval, err = readEval(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg4.CEval, err = readEval(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg4.S1Eval, err = readEval(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg4.S2Eval, err = readEval(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}
	if p.Msg4.ZShiftedEval, err = readEval(); err != nil {
		return total, fmt.Errorf("plonk: read proof: %w", err)
	}

	return total, nil
}
