package main

import (
	flag "github.com/spf13/pflag"

	"bb84sim/internal/config"
)

// roundFlags holds per-invocation overrides of the configured round options.
type roundFlags struct {
	qubits     int
	intercept  bool
	sampleSize int
	seed       int64
	resultsDB  string
}

func addRoundFlags(fs *flag.FlagSet, f *roundFlags) {
	fs.IntVarP(&f.qubits, "qubits", "n", 0, "Qubits to exchange per round")
	fs.BoolVar(&f.intercept, "intercept", false, "Measure every qubit in transit")
	fs.IntVar(&f.sampleSize, "sample-size", 0, "Sifted bits to reveal during verification")
	fs.Int64Var(&f.seed, "seed", 0, "Seed for replayable rounds")
	fs.StringVar(&f.resultsDB, "results-db", "", "SQLite file recording round outcomes")
}

// apply folds any flags the user actually set into cfg.
func (f *roundFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("qubits") {
		cfg.Qubits = f.qubits
	}
	if fs.Changed("intercept") {
		cfg.Intercept = f.intercept
	}
	if fs.Changed("sample-size") {
		cfg.SampleSize = f.sampleSize
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("results-db") {
		cfg.ResultsDB = f.resultsDB
	}
}
