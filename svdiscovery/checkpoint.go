package svdiscovery

// This file defines CheckpointWriter and CheckpointReader. CheckpointWriter
// dumps NovelAdjacency records into a recordio file, and CheckpointReader reads
// them back, so that classification can run separately from breakpoint
// inference.

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/recordio"
	"github.com/grailbio/base/recordio/recordiozstd"
)

const (
	// <checkpointVersionHeader, checkpointVersion> is stored in a recordio
	// header.
	checkpointVersionHeader = "svdiscoveryversion"
	checkpointVersion       = "NOVEL_ADJACENCY_V1"
)

func marshalNovelAdjacency(scratch []byte, v interface{}) ([]byte, error) {
	return Encode(v.(*NovelAdjacency)), nil
}

func unmarshalNovelAdjacency(in []byte) (interface{}, error) {
	return Decode(in)
}

// CheckpointWriter writes NovelAdjacency records to a recordio file.
type CheckpointWriter struct {
	path string
	out  file.File
	w    recordio.Writer
	n    int64
}

// NewCheckpointWriter creates a checkpoint file at path.
func NewCheckpointWriter(ctx context.Context, path string) (*CheckpointWriter, error) {
	recordiozstd.Init()
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create checkpoint", path)
	}
	w := recordio.NewWriter(out.Writer(ctx), recordio.WriterOpts{
		Marshal:      marshalNovelAdjacency,
		Transformers: []string{recordiozstd.Name},
	})
	w.AddHeader(checkpointVersionHeader, checkpointVersion)
	w.AddHeader(recordio.KeyTrailer, true)
	return &CheckpointWriter{path: path, out: out, w: w}, nil
}

// Append adds a record. Errors are reported by Close.
func (w *CheckpointWriter) Append(n *NovelAdjacency) {
	w.w.Append(n)
	w.n++
}

// Close finishes the file. It must be called exactly once, after appending all
// the records.
func (w *CheckpointWriter) Close(ctx context.Context) error {
	trailer := make([]byte, 8)
	binary.LittleEndian.PutUint64(trailer, uint64(w.n))
	w.w.SetTrailer(trailer)
	once := errors.Once{}
	once.Set(w.w.Finish())
	once.Set(w.out.Close(ctx))
	if err := once.Err(); err != nil {
		return errors.E(err, "close checkpoint", w.path)
	}
	log.Printf("%s: wrote %d novel adjacencies", w.path, w.n)
	return nil
}

// CheckpointReader reads the records written by CheckpointWriter.
type CheckpointReader struct {
	path string
	in   file.File
	r    recordio.Scanner
	want int64 // record count stored in the trailer
	n    int64
	cur  *NovelAdjacency
	eof  bool
}

// NewCheckpointReader opens a checkpoint file written by CheckpointWriter.
func NewCheckpointReader(ctx context.Context, path string) (*CheckpointReader, error) {
	recordiozstd.Init()
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open checkpoint", path)
	}
	r := recordio.NewScanner(in.Reader(ctx), recordio.ScannerOpts{
		Unmarshal: unmarshalNovelAdjacency,
	})
	fail := func(err error) (*CheckpointReader, error) {
		_ = in.Close(ctx)
		return nil, errors.E(err, "open checkpoint", path)
	}
	if err := r.Err(); err != nil {
		return fail(err)
	}
	versionFound := false
	for _, kv := range r.Header() {
		if kv.Key != checkpointVersionHeader {
			continue
		}
		if v, ok := kv.Value.(string); !ok || v != checkpointVersion {
			return fail(errors.E(errors.Invalid,
				fmt.Sprintf("checkpoint version mismatch, got %v, expect %v", kv.Value, checkpointVersion)))
		}
		versionFound = true
	}
	if !versionFound {
		return fail(errors.E(errors.Invalid, checkpointVersionHeader+" not found"))
	}
	trailer := r.Trailer()
	if len(trailer) != 8 {
		return fail(errors.E(errors.Invalid, "corrupt checkpoint trailer"))
	}
	return &CheckpointReader{
		path: path,
		in:   in,
		r:    r,
		want: int64(binary.LittleEndian.Uint64(trailer)),
	}, nil
}

// Scan reads the next record. It returns false at the end of the file or on
// error; Close reports the error.
func (r *CheckpointReader) Scan() bool {
	if !r.r.Scan() {
		r.eof = true
		return false
	}
	r.cur = r.r.Get().(*NovelAdjacency)
	r.n++
	return true
}

// Get yields the current record.
//
// REQUIRES: Last Scan call returned true.
func (r *CheckpointReader) Get() *NovelAdjacency { return r.cur }

// Close closes the reader. It must be called exactly once. It reports any
// error encountered while scanning, and checks that all the records were read
// when scanning reached the end of the file.
func (r *CheckpointReader) Close(ctx context.Context) error {
	once := errors.Once{}
	once.Set(r.r.Err())
	if once.Err() == nil && r.eof && r.n != r.want {
		once.Set(errors.E(errors.Integrity,
			fmt.Sprintf("checkpoint has %d records, trailer says %d", r.n, r.want)))
	}
	once.Set(r.r.Finish())
	once.Set(r.in.Close(ctx))
	if err := once.Err(); err != nil {
		return errors.E(err, "read checkpoint", r.path)
	}
	return nil
}
