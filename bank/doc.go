/*
Package bank implements the Fragment Bank and Kinds-seen index (spec.md
§4.2 and §3): an append-only store of previously-seen subtrees, keyed by
grammar node-kind, used by splice as the universe of candidate
replacement fragments.

Each kind maps to an (ordered sequence, dedup set) pair: the sequence
preserves insertion order (so a uniformly-random index is a uniform
pick, satisfying the Determinism property together with a seeded
random source), while the set gives O(1) "have we already banked this
exact fragment" membership tests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bank

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.bank'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.bank")
}
