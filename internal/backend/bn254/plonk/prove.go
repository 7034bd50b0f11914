package plonk

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/plonkgo/prover/internal/backend/bn254/poly"
	"github.com/plonkgo/prover/internal/backend/bn254/transcript"
)

// Prove runs the five-round Fiat-Shamir PLONK prover: a strictly
// sequential pipeline in which each round consumes the challenges the
// previous round's message earned from the transcript. No round is
// pipelined against another; the only concurrency in this module is the
// intra-round pointwise parallelism poly.Parallelize applies to
// coset-vector arithmetic.
func Prove(setup Setup, program Program, witness Witness, opts ...Option) (*Proof, error) {
	cfg := newConfig(opts...)

	n := program.GroupOrder()
	if cfg.forceDomain != 0 {
		n = cfg.forceDomain
	}
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("plonk: group order %d is not a power of two", n)
	}

	log := cfg.logger.With().Uint64("groupOrder", n).Str("backend", "plonk-bn254").Logger()
	start := time.Now()

	domain := poly.NewDomain(n)
	pkInput := program.CommonPreprocessedInput()

	pubAssignments := program.PublicAssignments()
	publicValues := make([]fr.Element, len(pubAssignments))
	for i, name := range pubAssignments {
		publicValues[i] = witness.value(name)
	}

	setupDigest, err := preprocessedDigest(setup, domain, pkInput)
	if err != nil {
		return nil, fmt.Errorf("plonk: digest preprocessed input: %w", err)
	}

	tr, err := transcript.New("plonk-bn254", setupDigest, publicValues)
	if err != nil {
		return nil, fmt.Errorf("plonk: init transcript: %w", err)
	}

	st, msg1, err := round1(setup, domain, pkInput, program, witness)
	if err != nil {
		return nil, fmt.Errorf("round1: %w", err)
	}
	beta, gamma, err := tr.Round1(msg1.A1, msg1.B1, msg1.C1)
	if err != nil {
		return nil, fmt.Errorf("round1: transcript: %w", err)
	}
	log.Debug().Str("round", "1").Msg("wire polynomials committed")

	st, msg2, err := round2(setup, st, beta, gamma)
	if err != nil {
		return nil, fmt.Errorf("round2: %w", err)
	}
	alpha, kappa, err := tr.Round2(msg2.Z1, n)
	if err != nil {
		return nil, fmt.Errorf("round2: transcript: %w", err)
	}
	log.Debug().Str("round", "2").Msg("permutation accumulator committed")

	st, msg3, err := round3(setup, st, alpha, kappa)
	if err != nil {
		return nil, fmt.Errorf("round3: %w", err)
	}
	zeta, err := tr.Round3(msg3.TLo1, msg3.TMid1, msg3.THi1, n)
	if err != nil {
		return nil, fmt.Errorf("round3: transcript: %w", err)
	}
	log.Debug().Str("round", "3").Msg("quotient polynomial committed")

	st, msg4, err := round4(st, zeta)
	if err != nil {
		return nil, fmt.Errorf("round4: %w", err)
	}
	v, err := tr.Round4(msg4.AEval, msg4.BEval, msg4.CEval, msg4.S1Eval, msg4.S2Eval, msg4.ZShiftedEval)
	if err != nil {
		return nil, fmt.Errorf("round4: transcript: %w", err)
	}
	log.Debug().Str("round", "4").Msg("evaluations at zeta computed")

	msg5, err := round5(setup, st, v)
	if err != nil {
		return nil, fmt.Errorf("round5: %w", err)
	}
	log.Debug().Str("round", "5").Msg("opening witnesses committed")

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")

	return &Proof{Msg1: msg1, Msg2: msg2, Msg3: msg3, Msg4: msg4, Msg5: msg5}, nil
}

// preprocessedDigest commits the five selector polynomials and three
// permutation polynomials and returns their marshalled digests, to be
// bound into the transcript at initialization. Without this, nothing ties
// a proof's challenges to the specific circuit or public inputs it claims
// to be for.
func preprocessedDigest(setup Setup, domain *poly.Domain, pk *CommonPreprocessedInput) ([][]byte, error) {
	polys := []*poly.Polynomial{pk.QL, pk.QR, pk.QM, pk.QO, pk.QC, pk.S1, pk.S2, pk.S3}
	out := make([][]byte, 0, len(polys))
	for _, p := range polys {
		mono, err := p.IFFT(domain)
		if err != nil {
			return nil, err
		}
		d, err := setup.Commit(mono, domain.N())
		if err != nil {
			return nil, err
		}
		out = append(out, d.Marshal())
	}
	return out, nil
}
