//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package retrieval provides the recall@K scorer. It measures what
// fraction of the relevant documents appear in the first K retrieved
// results, in single-K and multi-K variants.
package retrieval

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

// Name is the single-K scorer's registered name.
const Name = "recall_at_k"

const (
	// BreakdownKeyRecall through BreakdownKeyRetrievedCount are the
	// breakdown keys of a successful single-K result.
	BreakdownKeyRecall         = "recall"
	BreakdownKeyRelevantInTopK = "relevantInTopK"
	BreakdownKeyTotalRelevant  = "totalRelevant"
	BreakdownKeyK              = "k"
	BreakdownKeyRetrievedCount = "retrievedCount"

	// MetadataKeyMissedDocuments is the metadata key listing relevant
	// document IDs absent from the top K.
	MetadataKeyMissedDocuments = "missedDocuments"
)

// Scorer computes recall at a single cutoff. The configuration is fixed
// at construction and the scorer is safe for concurrent use.
type Scorer struct {
	opts *options
}

// New creates a recall@K scorer with the given options.
func New(opts ...Option) *Scorer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Scorer{opts: o}
}

// NewFromConfig builds the scorer from a configuration map. It is the
// registry factory for Name.
func NewFromConfig(config map[string]any) (scorer.Scorer, error) {
	cfg := struct {
		K         int     `mapstructure:"k"`
		MinRecall float64 `mapstructure:"minRecall"`
		Normalize bool    `mapstructure:"normalize"`
	}{
		K:         defaultK,
		MinRecall: 0.8,
		Normalize: true,
	}
	if err := scorer.DecodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	return New(
		WithK(cfg.K),
		WithMinRecall(cfg.MinRecall),
		WithNormalize(cfg.Normalize),
	), nil
}

// Name returns the scorer's registered name.
func (s *Scorer) Name() string { return Name }

// Score measures recall of the relevant documents within the first K
// retrieved results. output carries the retrieved list and expected the
// relevant list, in any of the accepted shapes. A K larger than the
// retrieved list is not an error; an empty relevant list is.
func (s *Scorer) Score(_ context.Context, output, expected any, _ *scorer.Context) *scorer.Result {
	if s.opts.k < 1 {
		return scorer.FailResult(fmt.Sprintf("k must be positive, got %d", s.opts.k), nil)
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

	rec, hits, missed := recallAt(retrieved, relevantOrder, relevantSet, s.opts.k)

	score := rec
	if !s.opts.normalize {
		score = rec * 100
	}

	return &scorer.Result{
		Score:  score,
		Passed: rec >= s.opts.minRecall,
		Reason: fmt.Sprintf("recall@%d=%.4f (%d of %d relevant retrieved)",
			s.opts.k, rec, hits, len(relevantOrder)),
		Breakdown: map[string]float64{
			BreakdownKeyRecall:         rec,
			BreakdownKeyRelevantInTopK: float64(hits),
			BreakdownKeyTotalRelevant:  float64(len(relevantOrder)),
			BreakdownKeyK:              float64(s.opts.k),
			BreakdownKeyRetrievedCount: float64(len(retrieved)),
		},
		Metadata: map[string]any{MetadataKeyMissedDocuments: missed},
	}
}

// recallAt computes recall over the first k retrieved IDs. Hits count
// distinct relevant IDs, so duplicated retrieval cannot inflate recall.
// missed lists the relevant IDs absent from the top K, in relevant
// order.
func recallAt(retrieved, relevantOrder []string, relevantSet map[string]struct{}, k int) (rec float64, hits int, missed []string) {
	topK := retrieved
	if k < len(topK) {
		topK = topK[:k]
	}

	found := make(map[string]struct{}, len(topK))
	for _, id := range topK {
		if _, ok := relevantSet[id]; ok {
			found[id] = struct{}{}
		}
	}
	hits = len(found)

	missed = make([]string, 0, len(relevantOrder)-hits)
	for _, id := range relevantOrder {
		if _, ok := found[id]; !ok {
			missed = append(missed, id)
		}
	}

	rec = float64(hits) / float64(len(relevantOrder))
	return rec, hits, missed
}
