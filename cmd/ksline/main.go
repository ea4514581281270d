// Command ksline is the CLI boundary spec.md §6 describes as out of core
// scope: it wires package instgen (instance sourcing), solver (offline
// optimum), predictor (prediction spectrum), simulate (the sweep), and
// export (CSV/JSON result sinks) into three subcommands.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
