/*
Package splice implements the Splicer (spec.md §4.3), the central
mutation algorithm: given an input's bytes and its already-parsed tree,
it composes one or more splice and deletion edits into a single new
byte sequence, periodically re-rendering and re-parsing so later edits
in the same call see accurate node ids and ranges.

All non-deterministic choices — which node to touch, which fragment to
draw, whether an edit is a deletion, how many edits to compose — route
through a caller-supplied *rand.Rand, so a fixed seed, fixed bank
contents and fixed mutation-call sequence reproduce byte-identical
output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package splice

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.splice'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.splice")
}
