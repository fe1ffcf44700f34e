package main

// This file defines the input and output formats of bio-sv-classify: a FASTA
// reference, a checkpoint of novel adjacencies written by
// svdiscovery.CheckpointWriter, and a TSV file with one line per SV call.

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/grailbio/svdiscovery/svdiscovery"
	"github.com/klauspost/compress/gzip"
)

// tsvHeader lists the output columns.
var tsvHeader = []string{"#id", "kind", "contig", "start", "end", "length", "alt", "source"}

func readReference(ctx context.Context, path string) (ref *reference.FASTA, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open reference", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	if ref, err = reference.NewFASTA(r); err != nil {
		return nil, errors.E(err, "read reference", path)
	}
	log.Printf("%s: read %d sequences", path, ref.Dictionary().Len())
	return ref, nil
}

func readCheckpoint(ctx context.Context, path string) ([]*svdiscovery.NovelAdjacency, error) {
	r, err := svdiscovery.NewCheckpointReader(ctx, path)
	if err != nil {
		return nil, err
	}
	var records []*svdiscovery.NovelAdjacency
	for r.Scan() {
		records = append(records, r.Get())
	}
	if err := r.Close(ctx); err != nil {
		return nil, err
	}
	log.Printf("%s: read %d novel adjacencies", path, len(records))
	return records, nil
}

// source describes the record a call was derived from.
func source(n *svdiscovery.NovelAdjacency) string {
	return fmt.Sprintf("%v,%v,%v", n.Type(), n.Left(), n.Right())
}

func writeCalls(w io.Writer, calls [][]svdiscovery.SVType) error {
	out := tsv.NewWriter(w)
	out.WriteString(strings.Join(tsvHeader, "\t"))
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, recordCalls := range calls {
		for _, c := range recordCalls {
			l := c.Locus()
			alt := "."
			if b, ok := c.(*svdiscovery.BreakEnd); ok {
				alt = b.AltAllele()
			}
			out.WriteString(c.ID())
			out.WriteString(c.Kind().String())
			out.WriteString(l.Contig)
			out.WriteUint32(uint32(l.Start))
			out.WriteUint32(uint32(l.End))
			out.WriteString(strconv.Itoa(c.Length()))
			out.WriteString(alt)
			out.WriteString(source(c.Source()))
			if err := out.EndLine(); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

// writeOutput writes the calls to path, or to stdout if path is empty.
func writeOutput(ctx context.Context, path string, calls [][]svdiscovery.SVType) (err error) {
	if path == "" {
		return writeCalls(os.Stdout, calls)
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create output", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if !strings.HasSuffix(path, ".gz") {
		return writeCalls(out.Writer(ctx), calls)
	}
	gz := gzip.NewWriter(out.Writer(ctx))
	once := errors.Once{}
	once.Set(writeCalls(gz, calls))
	once.Set(gz.Close())
	return once.Err()
}
