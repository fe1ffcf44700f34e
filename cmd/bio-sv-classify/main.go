package main

// bio-sv-classify converts the novel adjacencies stored in a checkpoint file
// into SV calls.
//
// Example:
//
//   bio-sv-classify --reference=hg38.fa.gz --input=adjacencies.nadj --output=calls.tsv.gz

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s --reference=<fasta> --input=<checkpoint> [--output=<tsv>]\n", os.Args[0])
	flag.PrintDefaults()
}

func run(ctx context.Context, opts Opts) error {
	ref, err := readReference(ctx, opts.ReferencePath)
	if err != nil {
		return err
	}
	records, err := readCheckpoint(ctx, opts.InputPath)
	if err != nil {
		return err
	}
	calls, stats, err := classifyAll(records, ref, opts)
	if err != nil {
		return err
	}
	if err := writeOutput(ctx, opts.OutputPath, calls); err != nil {
		return err
	}
	log.Printf("Stats: %+v", stats)
	return nil
}

func main() {
	flag.Usage = usage
	opts := DefaultOpts
	flag.StringVar(&opts.ReferencePath, "reference", "", "FASTA file of the reference. It may be gzipped.")
	flag.StringVar(&opts.InputPath, "input", "", "Checkpoint file of novel adjacencies.")
	flag.StringVar(&opts.OutputPath, "output", "", `TSV file of SV calls. It is gzipped if the name ends with ".gz".
If empty, the calls are written to stdout.`)
	flag.IntVar(&opts.Parallelism, "parallelism", DefaultOpts.Parallelism, "Max number of shards classified concurrently.")
	flag.IntVar(&opts.ShardSize, "shard-size", DefaultOpts.ShardSize, "Number of records per shard.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()
	if err := validate(&opts); err != nil {
		log.Fatal(err)
	}
	if err := run(ctx, opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("All done")
}
