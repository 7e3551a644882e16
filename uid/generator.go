package uid

import "sync/atomic"

// generator hands out tokens with strictly increasing identities starting
// at 1. It is safe for concurrent use. Only the process-wide instance mints
// tokens outside tests, so identities never repeat within a process.
type generator struct {
	last atomic.Uint64
}

func newGenerator() *generator {
	return &generator{}
}

func (g *generator) next(label string) Token {
	return Token{id: g.last.Add(1), label: label}
}

// process is the process-wide sequence behind New and NewNamed.
var process = newGenerator()

// New returns a process-unique token without a label.
func New() Token { return process.next("") }

// NewNamed returns a process-unique token displayed with label.
func NewNamed(label string) Token { return process.next(label) }

// Last returns the most recently issued identity, 0 if none.
func Last() uint64 { return process.last.Load() }
