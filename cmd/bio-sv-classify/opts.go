package main

import (
	"fmt"
	"runtime"
)

// Opts holds the commandline options.
type Opts struct {
	// ReferencePath is the FASTA file the records were called against. It may
	// be compressed.
	ReferencePath string
	// InputPath is the checkpoint file of novel adjacencies.
	InputPath string
	// OutputPath is the TSV file of SV calls. It is gzipped if the name ends
	// with ".gz". Empty means stdout.
	OutputPath string
	// Parallelism is the max number of shards classified concurrently.
	Parallelism int
	// ShardSize is the # of records per shard.
	ShardSize int
}

// DefaultOpts are the default values of Opts.
var DefaultOpts = Opts{
	Parallelism: runtime.NumCPU(),
	ShardSize:   4096,
}

func validate(opts *Opts) error {
	if opts.ReferencePath == "" {
		return fmt.Errorf("you must specify a reference with --reference")
	}
	if opts.InputPath == "" {
		return fmt.Errorf("you must specify a checkpoint file with --input")
	}
	if opts.ShardSize <= 0 {
		return fmt.Errorf("shard-size must be positive")
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	return nil
}
