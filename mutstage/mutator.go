package mutstage

import (
	"github.com/npillmayer/treesplice"
	"github.com/npillmayer/treesplice/splice"
)

// Result is the outcome of a single Mutator.Mutate call.
type Result int

const (
	// Skipped means the input was left untouched: either it failed to
	// parse, or the Splicer had nothing to do.
	Skipped Result = iota
	// Mutated means the input bytes were replaced by the Splicer's output.
	Mutated
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Skipped:
		return "Skipped"
	case Mutated:
		return "Mutated"
	default:
		return "Result(?)"
	}
}

// Mutator is the Mutation Stage Adapter of spec.md §4.5. It is stateless:
// all state lives in splicer's configuration and the Bank it was built
// over.
type Mutator struct {
	parser  treesplice.Parser
	splicer *splice.Splicer
}

// NewMutator returns a Mutator presenting splicer to the engine, parsing
// each candidate input with parser before delegating to it.
func NewMutator(parser treesplice.Parser, splicer *splice.Splicer) *Mutator {
	return &Mutator{parser: parser, splicer: splicer}
}

// Mutate parses input, then asks the Splicer to mutate it. On parse
// failure, or when the Splicer reports nothing to do, Mutate returns
// (input, Skipped) — the caller's bytes unchanged. Otherwise it returns the
// Splicer's output and Mutated.
func (m *Mutator) Mutate(input []byte) ([]byte, Result) {
	tree, err := m.parser.Parse(input)
	if err != nil {
		tracer().Debugf("mutstage: input failed to parse, skipping: %v", err)
		return input, Skipped
	}
	out, ok := m.splicer.Splice(input, tree)
	if !ok || len(out) == 0 {
		return input, Skipped
	}
	return out, Mutated
}
