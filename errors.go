package treesplice

import "errors"

// Error kinds from spec.md §7. EngineError and CandidateExhaustion are not
// represented here: the former is whatever the surrounding engine returns
// and this module never interprets it, the latter is handled internally
// (promotion to chaotic mode) and never surfaced to a caller.
var (
	// ErrInvalidGrammar is returned by nodetypes.New when a node-types
	// description cannot be parsed. Fatal at startup.
	ErrInvalidGrammar = errors.New("treesplice: invalid grammar description")

	// ErrParseFailure is returned by a Parser when bytes are rejected
	// outright by the target grammar.
	ErrParseFailure = errors.New("treesplice: parse failure")

	// ErrRenderFailure is returned by a Renderer when a tree cannot be
	// rendered against its base bytes (e.g. a leaf's byte range lies
	// outside them). Edits keyed by ids absent from the tree are ignored.
	ErrRenderFailure = errors.New("treesplice: render failure")
)
