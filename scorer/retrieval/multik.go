//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

// MultiName is the multi-K scorer's registered name.
const MultiName = "recall_at_k_multi"

// MultiScorer computes recall at several cutoffs in one pass. The K
// values are sorted ascending and deduplicated at construction; an empty
// list falls back to the single default cutoff. The aggregate score is
// the arithmetic mean of the per-K scores and the result passes only
// when every cutoff passes.
type MultiScorer struct {
	opts *options
	ks   []int
}

// NewMulti creates a multi-K recall scorer for the given cutoffs.
func NewMulti(ks []int, opts ...Option) *MultiScorer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &MultiScorer{opts: o, ks: normalizeKs(ks)}
}

// NewMultiFromConfig builds the scorer from a configuration map. It is
// the registry factory for MultiName.
func NewMultiFromConfig(config map[string]any) (scorer.Scorer, error) {
	cfg := struct {
		Ks        []int   `mapstructure:"ks"`
		MinRecall float64 `mapstructure:"minRecall"`
		Normalize bool    `mapstructure:"normalize"`
	}{
		MinRecall: 0.8,
		Normalize: true,
	}
	if err := scorer.DecodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	return NewMulti(cfg.Ks,
		WithMinRecall(cfg.MinRecall),
		WithNormalize(cfg.Normalize),
	), nil
}

func normalizeKs(ks []int) []int {
	seen := make(map[int]struct{}, len(ks))
	out := make([]int, 0, len(ks))
	for _, k := range ks {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	if len(out) == 0 {
		out = append(out, defaultK)
	}
	sort.Ints(out)
	return out
}

// Name returns the scorer's registered name.
func (s *MultiScorer) Name() string { return MultiName }

// Score runs the recall computation once per configured cutoff. The
// breakdown carries raw recall under "recall@<k>" keys; missed documents
// are reported for the largest cutoff.
func (s *MultiScorer) Score(_ context.Context, output, expected any, _ *scorer.Context) *scorer.Result {
	for _, k := range s.ks {
		if k < 1 {
			return scorer.FailResult(fmt.Sprintf("k must be positive, got %d", k), nil)
		}
	}

	retrievedRaw, relevantRaw, err := extractLists(output, expected)
	if err != nil {
		return scorer.FailResult("invalid retrieval input", err)
	}

	retrieved := documentIDs(retrievedRaw)
	relevantOrder, relevantSet := uniqueIDs(relevantRaw)
	if len(relevantOrder) == 0 {
		return scorer.FailResult("no relevant documents to score against", nil)
	}

	breakdown := make(map[string]float64, len(s.ks))
	var (
		scoreSum float64
		passed   = true
		missed   []string
		parts    = make([]string, 0, len(s.ks))
	)
	for _, k := range s.ks {
		rec, _, missedAtK := recallAt(retrieved, relevantOrder, relevantSet, k)
		breakdown[fmt.Sprintf("recall@%d", k)] = rec

		score := rec
		if !s.opts.normalize {
			score = rec * 100
		}
		scoreSum += score
		passed = passed && rec >= s.opts.minRecall
		missed = missedAtK
		parts = append(parts, fmt.Sprintf("recall@%d=%.4f", k, rec))
	}

	return &scorer.Result{
		Score:     scoreSum / float64(len(s.ks)),
		Passed:    passed,
		Reason:    strings.Join(parts, ", "),
		Breakdown: breakdown,
		Metadata:  map[string]any{MetadataKeyMissedDocuments: missed},
	}
}
