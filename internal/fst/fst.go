// Package fst implements a small weighted finite-state transducer kernel
// over the tropical semiring (min, +). It is the algebraic substrate that
// every class grammar in internal/tnorm is built from: acceptors, string
// crosses, union, concatenation, closure, composition, a context-dependent
// rewrite, string-map lookup and shortest-path extraction.
//
// Transducers here are "letter transducers": every arc consumes at most
// one input rune and emits at most one output rune (runes are represented
// as int32, with Epsilon standing in for "none"). Multi-rune crosses are
// built by chaining epsilon-input/epsilon-output arcs, which keeps
// composition a simple synchronized product instead of a general
// string-alignment problem.
package fst

import (
	"fmt"
	"math"
)

// Epsilon is the empty-symbol marker used for both input and output labels.
const Epsilon rune = -1

// Any is a wildcard input/output label meaning "any rune", used to avoid
// enumerating an entire Unicode alphabet. It matches a rune even where a
// literal arc from the same state also matches it (it is not a rho/default
// transition); which path wins is left to the weights. An arc with In == Any and Out == Any additionally
// means "copy whatever rune was actually matched" rather than emitting a
// fixed symbol; Compose resolves that substitution at composition time.
const Any rune = -2

// Weight is a value in the tropical semiring: paths compose by summation
// (⊗ = +) and alternatives combine by minimum (⊕ = min).
type Weight float64

// Infinity is the identity element of ⊕ (min); no path ever carries it.
var Infinity = Weight(math.Inf(1))

// Arc is a single transition: consume In (or nothing, if Epsilon), emit
// Out (or nothing), pay Weight, move to state To.
type Arc struct {
	In     rune
	Out    rune
	Weight Weight
	To     int
}

// Fst is a weighted finite-state transducer. States are dense integers
// 0..len(States)-1; state 0 is always the start state after any
// constructor in this package returns (callers must not rely on that
// once they hand-build an Fst outside this package).
type Fst struct {
	Start  int
	States []state
}

type state struct {
	Arcs  []Arc
	Final bool
	// FinalWeight is only meaningful when Final is true.
	FinalWeight Weight
}

// New returns an empty single-state, non-final Fst (the empty language).
func New() *Fst {
	return &Fst{Start: 0, States: []state{{}}}
}

// NumStates reports the number of states in the machine.
func (f *Fst) NumStates() int { return len(f.States) }

// AddState appends a fresh non-final state and returns its index. Grammar
// packages that need bespoke transition logic the Accept/Cross/Union/
// Concat/Closure combinators don't express directly (e.g. cardinal's
// position-and-carry state machine) build on New()+AddState/AddArc/
// SetFinal the same way this package's own CDRewrite does internally.
func (f *Fst) AddState() int { return f.addState() }

// AddArc appends arc a to state from.
func (f *Fst) AddArc(from int, a Arc) { f.addArc(from, a) }

// SetFinal marks state s as accepting with the given final weight.
func (f *Fst) SetFinal(s int, w Weight) { f.setFinal(s, w) }

// addState appends a fresh non-final state and returns its index.
func (f *Fst) addState() int {
	f.States = append(f.States, state{})
	return len(f.States) - 1
}

// addArc appends arc a to state from. from must be a valid state index.
func (f *Fst) addArc(from int, a Arc) {
	f.States[from].Arcs = append(f.States[from].Arcs, a)
}

// setFinal marks state s as accepting with the given final weight.
func (f *Fst) setFinal(s int, w Weight) {
	f.States[s].Final = true
	f.States[s].FinalWeight = w
}

// IsFinal reports whether state s is accepting, and its final weight.
func (f *Fst) IsFinal(s int) (bool, Weight) {
	st := f.States[s]
	return st.Final, st.FinalWeight
}

// ArcsFrom returns the outgoing arcs of state s.
func (f *Fst) ArcsFrom(s int) []Arc { return f.States[s].Arcs }

// Clone returns a deep copy of f so callers can mutate the result without
// disturbing the original (every exported operation in this package
// already returns a fresh Fst; Clone exists for callers that build on top
// of a shared "template" machine, e.g. the digit tables).
func (f *Fst) Clone() *Fst {
	out := &Fst{Start: f.Start, States: make([]state, len(f.States))}
	for i, st := range f.States {
		arcs := make([]Arc, len(st.Arcs))
		copy(arcs, st.Arcs)
		out.States[i] = state{Arcs: arcs, Final: st.Final, FinalWeight: st.FinalWeight}
	}
	return out
}

func (w Weight) String() string {
	if w == Infinity {
		return "inf"
	}
	return fmt.Sprintf("%g", float64(w))
}
