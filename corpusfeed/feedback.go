package corpusfeed

import (
	"github.com/npillmayer/treesplice"
	"github.com/npillmayer/treesplice/bank"
)

// Feedback is the Corpus Feedback Adapter of spec.md §4.4. It wraps a
// Parser and the engine-owned Bank it feeds; construct one per worker with
// NewFeedback.
type Feedback struct {
	parser treesplice.Parser
	bank   *bank.Bank
}

// NewFeedback returns a Feedback that ingests accepted inputs, parsed with
// parser, into bnk.
func NewFeedback(parser treesplice.Parser, bnk *bank.Bank) *Feedback {
	return &Feedback{parser: parser, bank: bnk}
}

// IsInteresting always reports false: this adapter never votes on
// interestingness, it only observes acceptance via OnAccept.
func (f *Feedback) IsInteresting(input []byte) bool {
	return false
}

// OnAccept is invoked by the engine when input has been accepted into the
// corpus. It re-parses input and folds every subtree into the Bank. A
// parse failure is not an error here: the input is still a useful corpus
// member for coverage purposes, it simply contributes no new fragments.
func (f *Feedback) OnAccept(input []byte) {
	tree, err := f.parser.Parse(input)
	if err != nil {
		tracer().Debugf("corpusfeed: accepted input failed to reparse, skipping ingestion: %v", err)
		return
	}
	f.bank.AddTree(tree, input)
}
