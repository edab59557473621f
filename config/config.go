// Package config holds package-level tunables for the miner binary,
// overridable by flag at startup, following the exported-var pattern in
// poai/core/config/config.go.
package config

// Difficulty is the default difficulty byte applied to a synthetic
// trailer when none is supplied (e.g. by the `mine` CLI subcommand
// without a --trailer file).
var Difficulty uint8 = 16

// Workers is the number of concurrent mining workers to run.
var Workers int = 1

// DataDir is the directory used for the optional solved-nonce ledger.
var DataDir string = "data"

// ReportInterval is how many Generate attempts a worker makes between
// progress log lines.
var ReportInterval uint64 = 100000

// StaticMap reports whether the binary was built with the staticmap
// build tag (fixed-size Peach map/cache rather than heap allocation).
// Set at init time by the build-tag-specific files in this package.
var StaticMap bool
