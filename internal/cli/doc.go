// Package cli wires the stamplog command line: a root command carrying the
// logger settings as persistent flags, plus log, demo and version subcommands.
package cli
