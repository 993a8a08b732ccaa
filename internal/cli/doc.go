// Package cli implements the command-line interface for confscout.
//
// The cli package provides the Cobra-based CLI with the aggregate, catalog,
// list, and calendar subcommands. It wires configuration, logging, the
// fetchers, the dedup engine, and the geocoder into the pipeline driver and
// formats results as text or JSON.
package cli
