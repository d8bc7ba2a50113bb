/*
Package store persists a bank.Bank to disk between fuzzing runs (spec.md
§6, "Persisted state"): worker restarts resume with previously-accumulated
fragments rather than starting cold. The format is plain JSON (via
Bank's own json.Marshaler/Unmarshaler), alongside a structhash-derived
checksum so a corrupted or foreign snapshot is rejected at load time
rather than silently misinterpreted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package store

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.store'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.store")
}
