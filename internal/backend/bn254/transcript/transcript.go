// Package transcript wraps gnark-crypto's Fiat-Shamir transcript behind the
// five-hook contract the round driver expects: bind a round's message,
// squeeze the next round's challenges. It also owns the rejection-sampling
// rules (never return zero; never return a value inside the small domain
// when a challenge is required to land outside it).
package transcript

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
)

// Challenge labels, declared in the exact order they are computed.
// gnark-crypto's transcript chains each challenge into the next one's
// input, so presenting the labels in round order is what makes every
// challenge a deterministic function of everything bound before it.
const (
	labelBeta  = "beta"
	labelGamma = "gamma"
	labelAlpha = "alpha"
	labelKappa = "kappa"
	labelZeta  = "zeta"
	labelV     = "v"
)

// ErrChallengeCollision is returned when rejection sampling fails to land
// on an acceptable challenge after a bounded number of attempts. In
// practice this would mean a uniform-random function collided, an
// astronomically unlikely event this module still reports rather than
// looping forever.
var ErrChallengeCollision = errors.New("transcript: squeezed challenge collided with a disallowed value")

const maxRejectionAttempts = 256

// Transcript implements this module's Fiat-Shamir contract on top of
// gnark-crypto's SHA-256 transcript.
type Transcript struct {
	fs *fiatshamir.Transcript
}

// New starts a transcript bound to a domain-separation label and
// immediately absorbs the preprocessed input's commitments and the public
// input values. Binding them before round 1 means no detail of the
// circuit or the public statement can vary without varying every
// challenge that follows.
func New(label string, preprocessedDigests [][]byte, publicInputs []fr.Element) (*Transcript, error) {
	fs := fiatshamir.NewTranscript(fiatshamir.SHA256, labelBeta, labelGamma, labelAlpha, labelKappa, labelZeta, labelV)
	t := &Transcript{fs: fs}

	if err := t.bindAll([]byte(label)); err != nil {
		return nil, err
	}
	for _, d := range preprocessedDigests {
		if err := t.bindAll(d); err != nil {
			return nil, err
		}
	}
	for i := range publicInputs {
		b := publicInputs[i].Bytes()
		if err := t.bindAll(b[:]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// bindAll binds data under every challenge label, so that anything
// absorbed at init time influences every subsequent challenge regardless
// of which label eventually consumes it.
func (t *Transcript) bindAll(data []byte) error {
	for _, l := range []string{labelBeta, labelGamma, labelAlpha, labelKappa, labelZeta, labelV} {
		if err := t.fs.Bind(l, data); err != nil {
			return fmt.Errorf("transcript: bind %s: %w", l, err)
		}
	}
	return nil
}

func (t *Transcript) bind(label string, data []byte) error {
	if err := t.fs.Bind(label, data); err != nil {
		return fmt.Errorf("transcript: bind %s: %w", label, err)
	}
	return nil
}

func (t *Transcript) challenge(label string) (fr.Element, error) {
	b, err := t.fs.ComputeChallenge(label)
	if err != nil {
		return fr.Element{}, fmt.Errorf("transcript: compute %s: %w", label, err)
	}
	var e fr.Element
	e.SetBytes(b)
	return e, nil
}

// nonZero rejects a zero challenge by re-binding a domain-separated nonce
// and recomputing.
func (t *Transcript) nonZero(label string) (fr.Element, error) {
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		e, err := t.challenge(label)
		if err != nil {
			return fr.Element{}, err
		}
		if !e.IsZero() {
			return e, nil
		}
		if err := t.bind(label, []byte{byte(attempt)}); err != nil {
			return fr.Element{}, err
		}
	}
	return fr.Element{}, fmt.Errorf("%w: %s stayed zero after %d rejection rounds", ErrChallengeCollision, label, maxRejectionAttempts)
}

// nonZeroOutsideDomain is nonZero plus the additional constraint that the
// challenge must not be an n-th root of unity (domainSize = n): both κ and
// ζ need this, since landing on one would make the vanishing polynomial
// zero there.
func (t *Transcript) nonZeroOutsideDomain(label string, domainSize uint64) (fr.Element, error) {
	one := fr.One()
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		e, err := t.nonZero(label)
		if err != nil {
			return fr.Element{}, err
		}
		var en fr.Element
		en.Exp(e, new(big.Int).SetUint64(domainSize))
		if !en.Equal(&one) {
			return e, nil
		}
		if err := t.bind(label, []byte{byte(attempt)}); err != nil {
			return fr.Element{}, err
		}
	}
	return fr.Element{}, fmt.Errorf("%w: %s stayed inside the small domain after %d rejection rounds", ErrChallengeCollision, label, maxRejectionAttempts)
}

func marshalDigests(ds ...kzg.Digest) [][]byte {
	out := make([][]byte, len(ds))
	for i := range ds {
		out[i] = ds[i].Marshal()
	}
	return out
}

// Round1 absorbs (a1, b1, c1) and returns (beta, gamma).
func (t *Transcript) Round1(a1, b1, c1 kzg.Digest) (beta, gamma fr.Element, err error) {
	for _, d := range marshalDigests(a1, b1, c1) {
		if err = t.bind(labelBeta, d); err != nil {
			return
		}
		if err = t.bind(labelGamma, d); err != nil {
			return
		}
	}
	if beta, err = t.nonZero(labelBeta); err != nil {
		return
	}
	gamma, err = t.nonZero(labelGamma)
	return
}

// Round2 absorbs z1 and returns (alpha, kappa). kappa must land outside
// the order-domainSize subgroup: it is the fft_cofactor, and the quotient
// construction divides by (X^domainSize - 1) evaluated on the coset it
// shifts by kappa.
func (t *Transcript) Round2(z1 kzg.Digest, domainSize uint64) (alpha, kappa fr.Element, err error) {
	d := z1.Marshal()
	if err = t.bind(labelAlpha, d); err != nil {
		return
	}
	if err = t.bind(labelKappa, d); err != nil {
		return
	}
	if alpha, err = t.nonZero(labelAlpha); err != nil {
		return
	}
	kappa, err = t.nonZeroOutsideDomain(labelKappa, domainSize)
	return
}

// Round3 absorbs (t_lo, t_mid, t_hi) and returns zeta, which like kappa
// must land outside the order-domainSize subgroup.
func (t *Transcript) Round3(tLo, tMid, tHi kzg.Digest, domainSize uint64) (zeta fr.Element, err error) {
	for _, d := range marshalDigests(tLo, tMid, tHi) {
		if err = t.bind(labelZeta, d); err != nil {
			return
		}
	}
	zeta, err = t.nonZeroOutsideDomain(labelZeta, domainSize)
	return
}

// Round4 absorbs the six round-4 evaluations and returns v.
func (t *Transcript) Round4(aEval, bEval, cEval, s1Eval, s2Eval, zShiftedEval fr.Element) (v fr.Element, err error) {
	for _, e := range []fr.Element{aEval, bEval, cEval, s1Eval, s2Eval, zShiftedEval} {
		b := e.Bytes()
		if err = t.bind(labelV, b[:]); err != nil {
			return
		}
	}
	v, err = t.nonZero(labelV)
	return
}
