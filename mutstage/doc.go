/*
Package mutstage implements the Mutation Stage Adapter (spec.md §4.5): it
presents a splice.Splicer to the surrounding fuzzing engine as one of
several interchangeable mutators invoked per fuzzing iteration. The
adapter itself is stateless — all state lives in the Splicer's
configuration and the engine-held Bank it reads from.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mutstage

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.mutstage'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.mutstage")
}
