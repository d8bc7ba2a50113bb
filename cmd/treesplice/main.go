/*
Command treesplice is the minimal operational surface of spec.md §6: a
corpus-driven mutation runner ("run"), a single-file replay utility
("replay"), and an interactive Fragment Bank inspector ("inspect"). The
coverage-guided engine proper — scheduler, executor, broker, crash
detector — is out of scope; this binary exercises the Splicer, Bank, and
adapters directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'treesplice.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.cmd")
}

var traceLevel string

func traceLevelFromFlag(s string) tracing.TraceLevel {
	switch s {
	case "Debug":
		return tracing.LevelDebug
	case "Error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	root := &cobra.Command{
		Use:   "treesplice",
		Short: "A grammar-aware tree-splicing mutator, driven outside its engine for experimentation.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			tracer().SetTraceLevel(traceLevelFromFlag(traceLevel))
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "Info", "Trace level [Debug|Info|Error]")
	root.AddCommand(newRunCmd(), newReplayCmd(), newInspectCmd())

	if err := root.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
