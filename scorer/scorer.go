//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package scorer defines the contract shared by all evaluation scorers:
// the Scorer interface, the Result a single scoring run produces, and the
// auxiliary types scorers report through. Concrete scorers live in the
// subpackages structural, classification and retrieval.
package scorer

import "context"

// Result is the outcome of scoring one output against one expectation.
type Result struct {
	// Score is the numeric quality signal. Canonically in [0, 1]; scorers
	// built with normalization disabled report [0, 100] instead.
	Score float64 `json:"score"`

	// Passed reports whether Score cleared the scorer's own threshold.
	// It is always derived from that comparison, never set directly.
	Passed bool `json:"passed"`

	// Reason is a human-readable explanation of the outcome.
	Reason string `json:"reason,omitempty"`

	// Breakdown carries named sub-scores and counters, keyed per scorer.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`

	// Metadata carries structured detail such as difference lists or
	// missed document IDs.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// DiffKind classifies a single structural difference.
type DiffKind string

const (
	// DiffMissing marks a value present in the expectation but absent
	// from the actual output.
	DiffMissing DiffKind = "missing"
	// DiffExtra marks a value present in the actual output but absent
	// from the expectation.
	DiffExtra DiffKind = "extra"
	// DiffDifferent marks a value present on both sides with different
	// content.
	DiffDifferent DiffKind = "different"
	// DiffTypeMismatch marks an array on one side paired with an object
	// on the other.
	DiffTypeMismatch DiffKind = "type-mismatch"
)

// Difference records one divergence between actual and expected values.
type Difference struct {
	// Path locates the divergence in dot/bracket notation rooted at
	// "root", e.g. "root.items[2].name".
	Path string `json:"path"`

	// Expected is the value the expectation holds at Path, absent for
	// extra values.
	Expected any `json:"expected,omitempty"`

	// Actual is the value the output holds at Path, absent for missing
	// values.
	Actual any `json:"actual,omitempty"`

	// Kind classifies the divergence.
	Kind DiffKind `json:"kind"`
}

// ConfusionCounts is a binary confusion matrix.
type ConfusionCounts struct {
	TruePositives  int `json:"truePositives"`
	TrueNegatives  int `json:"trueNegatives"`
	FalsePositives int `json:"falsePositives"`
	FalseNegatives int `json:"falseNegatives"`
}

// Total returns the number of classified samples.
func (c ConfusionCounts) Total() int {
	return c.TruePositives + c.TrueNegatives + c.FalsePositives + c.FalseNegatives
}

// Context carries optional per-case information a scorer may consult.
// Scorers must accept a nil Context.
type Context struct {
	// Input is the original input the scored output was produced from.
	Input any

	// Category is the case's grouping label.
	Category string

	// Metadata carries arbitrary caller-provided detail.
	Metadata map[string]any
}

// MetadataKeyError is the Result.Metadata key holding the underlying
// message of a recovered scoring failure.
const MetadataKeyError = "error"

// Scorer scores one output against one expectation.
//
// Score never panics and never reports failure out of band: when scoring
// itself fails (malformed input, bad configuration) the returned Result
// has Score 0, Passed false, a Reason naming the failure and the
// underlying message in Metadata under MetadataKeyError. A zero score
// from a failed run is therefore always distinguishable from a genuine
// zero score by the presence of that key.
type Scorer interface {
	// Name returns the scorer's registered name.
	Name() string

	// Score scores output against expected. sc may be nil.
	Score(ctx context.Context, output, expected any, sc *Context) *Result
}

// FailResult builds the Result a scorer returns for a recovered failure.
// reason lands in Reason; the message in Metadata is err's when err is
// non-nil and reason otherwise.
func FailResult(reason string, err error) *Result {
	msg := reason
	if err != nil {
		msg = err.Error()
	}
	return &Result{
		Reason:   reason,
		Metadata: map[string]any{MetadataKeyError: msg},
	}
}
