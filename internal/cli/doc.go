// Package cli turns designgen's command-line arguments into a validated
// app.Config and reports usage problems as ExitError values with exit code 2.
package cli
