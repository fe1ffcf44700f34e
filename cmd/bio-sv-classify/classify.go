package main

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/grailbio/svdiscovery/svdiscovery"
)

// classifyAll classifies the records in shards of opts.ShardSize, running at
// most opts.Parallelism jobs. calls[i] holds the calls derived from
// records[i]. The first classification error aborts the run.
func classifyAll(records []*svdiscovery.NovelAdjacency, ref reference.Source, opts Opts) ([][]svdiscovery.SVType, svdiscovery.Stats, error) {
	calls := make([][]svdiscovery.SVType, len(records))
	nShard := (len(records) + opts.ShardSize - 1) / opts.ShardSize
	parallelism := opts.Parallelism
	if parallelism > nShard {
		parallelism = nShard
	}
	stats := make([]svdiscovery.Stats, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startShard := (jobIdx * nShard) / parallelism
		endShard := ((jobIdx + 1) * nShard) / parallelism
		start := startShard * opts.ShardSize
		end := endShard * opts.ShardSize
		if end > len(records) {
			end = len(records)
		}
		log.Debug.Printf("job %d: classifying records [%d,%d)", jobIdx, start, end)
		for i := start; i < end; i++ {
			c, err := records[i].Classify(ref)
			if err != nil {
				return errors.E(err, fmt.Sprintf("classify record %d (%v)", i, records[i]))
			}
			calls[i] = c
			stats[jobIdx].Add(c)
		}
		return nil
	})
	if err != nil {
		return nil, svdiscovery.Stats{}, err
	}
	var total svdiscovery.Stats
	for _, s := range stats {
		total = total.Merge(s)
	}
	return calls, total, nil
}
