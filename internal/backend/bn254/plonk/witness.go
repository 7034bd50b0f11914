package plonk

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Wire names a variable slot in a wire triple. NoWire, its zero value, is
// the explicit empty-wire sentinel: a gate with fewer than three live
// wires (e.g. a public-input row with no output) names the unused slots
// NoWire rather than leaving the caller to invent an implicit convention.
type Wire string

// NoWire is the sentinel for "this slot names no wire". Looking it up in a
// Witness is defined to yield the zero field element.
const NoWire Wire = ""

// Witness assigns field values to wires. NoWire need not be (and should
// not be) present as a key; its value is defined to be zero regardless.
type Witness map[Wire]fr.Element

func (w Witness) value(name Wire) fr.Element {
	if name == NoWire {
		return fr.Element{}
	}
	return w[name]
}
