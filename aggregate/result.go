//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package aggregate

import "trpc.group/trpc-go/trpc-eval-go/scorer"

// ScorerRun pairs a scorer name with the result it produced for one
// case. A case's runs form an ordered sequence: the same scorer may
// legitimately appear more than once.
type ScorerRun struct {
	// ScorerName is the name of the scorer that produced Result.
	ScorerName string `json:"scorerName"`

	// Result is the scoring outcome.
	Result *scorer.Result `json:"result"`
}

// TestCaseResult collects every scorer run for one evaluation case.
type TestCaseResult struct {
	// ID identifies the case.
	ID string `json:"id"`

	// Category is the case's grouping label. Empty maps to the
	// "uncategorized" group during aggregation.
	Category string `json:"category,omitempty"`

	// ScorerResults holds the runs in execution order.
	ScorerResults []ScorerRun `json:"scorerResults"`

	// Passed is the caller-supplied verdict for the whole case. It is
	// deliberately independent of the individual scorer flags: callers
	// decide how scorer outcomes combine.
	Passed bool `json:"passed"`

	// Metadata carries arbitrary caller-provided detail.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GroupMetrics summarizes one slice of the suite, either a category of
// cases or all runs of one scorer.
type GroupMetrics struct {
	// Count is the number of cases (per category) or runs (per scorer).
	Count int `json:"count"`

	// PassRate is the passed fraction of Count.
	PassRate float64 `json:"passRate"`

	// AverageScore is the mean of the group's scores.
	AverageScore float64 `json:"averageScore"`

	// MedianScore is the median of the group's scores.
	MedianScore float64 `json:"medianScore"`
}

// ConfidenceInterval bounds the mean score at the configured confidence
// level.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// AggregatedMetrics is the suite-level statistics summary.
type AggregatedMetrics struct {
	// TotalCases, PassedCases and FailedCases count cases by their
	// caller-supplied verdicts.
	TotalCases  int `json:"totalCases"`
	PassedCases int `json:"passedCases"`
	FailedCases int `json:"failedCases"`

	// PassRate is PassedCases over TotalCases.
	PassRate float64 `json:"passRate"`

	// AverageScore, MedianScore and StdDevScore describe the flattened
	// distribution of every scorer score across all cases. StdDevScore
	// is the population deviation (dividing by N).
	AverageScore float64 `json:"averageScore"`
	MedianScore  float64 `json:"medianScore"`
	StdDevScore  float64 `json:"stdDevScore"`

	// ConfidenceInterval bounds the mean score. Nil when fewer than two
	// scores exist.
	ConfidenceInterval *ConfidenceInterval `json:"confidenceInterval,omitempty"`

	// ByCategory groups cases by category label.
	ByCategory map[string]GroupMetrics `json:"byCategory"`

	// ByScorer groups runs by scorer name.
	ByScorer map[string]GroupMetrics `json:"byScorer"`

	// CustomMetrics carries avg_<key> and median_<key> entries for
	// every breakdown key plus p25..p99 percentiles of the score
	// distribution.
	CustomMetrics map[string]float64 `json:"customMetrics"`
}
