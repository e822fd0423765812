package fst

import "errors"

// ErrComposeIncompatible is returned when Compose is given an operand
// with no states at all, and when ComposeAll is called with no operands.
var ErrComposeIncompatible = errors.New("fst: compose operands have incompatible symbol tables")

// ErrNotDeterminizable is returned by Difference when the subtrahend is
// not a finite, literal-string acceptor (the only shape this kernel can
// subtract without a full subset-construction determinizer).
var ErrNotDeterminizable = errors.New("fst: operand is not determinizable")

// ErrEmptyLanguage is returned by ShortestPath when no accepting path
// exists.
var ErrEmptyLanguage = errors.New("fst: empty language, no accepting path")
