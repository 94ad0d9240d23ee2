// Package cli implements the interactive BookSwap shell: a line-driven
// REPL over the session manager and the REST client. All network policy
// lives below this package; the CLI only validates input, invokes
// operations, and prints results.
package cli
