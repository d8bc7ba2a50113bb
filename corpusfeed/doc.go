/*
Package corpusfeed implements the Corpus Feedback Adapter (spec.md §4.4):
a narrow feedback hook presented to the surrounding fuzzing engine. It
never votes on interestingness itself — it piggy-backs on the engine's
acceptance pipeline to grow a bank.Bank whenever the engine decides an
input is worth keeping.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package corpusfeed

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.corpusfeed'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.corpusfeed")
}
