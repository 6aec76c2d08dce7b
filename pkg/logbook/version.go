// Package logbook carries module-level metadata shared by the CLI.
package logbook

const Version = "0.1.0"
