//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package aggregate turns per-case scorer results into suite-level
// statistics: pass rates, score distribution moments, per-category and
// per-scorer summaries and custom breakdown metrics.
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"trpc.group/trpc-go/trpc-eval-go/internal/stat"
)

// DefaultCategory is the grouping label for cases without a category.
const DefaultCategory = "uncategorized"

// options holds the aggregation configuration.
type options struct {
	confidenceLevel float64
}

// Option configures the aggregation.
type Option func(*options)

// WithConfidenceLevel sets the confidence level for the mean-score
// interval. Supported levels are 0.90, 0.95 and 0.99; anything else
// falls back to the 95% critical value. Defaults to 0.95.
func WithConfidenceLevel(level float64) Option {
	return func(o *options) {
		o.confidenceLevel = level
	}
}

// Calculate computes the suite statistics for results. An empty input
// yields an all-zero summary with empty maps rather than an error. The
// computation is deterministic: the same input always produces the same
// output.
func Calculate(results []TestCaseResult, opts ...Option) *AggregatedMetrics {
	o := &options{confidenceLevel: 0.95}
	for _, opt := range opts {
		opt(o)
	}

	m := &AggregatedMetrics{
		ByCategory:    make(map[string]GroupMetrics),
		ByScorer:      make(map[string]GroupMetrics),
		CustomMetrics: make(map[string]float64),
	}
	if len(results) == 0 {
		return m
	}

	m.TotalCases = len(results)
	for _, r := range results {
		if r.Passed {
			m.PassedCases++
		}
	}
	m.FailedCases = m.TotalCases - m.PassedCases
	m.PassRate = float64(m.PassedCases) / float64(m.TotalCases)

	scores := flattenScores(results)
	m.AverageScore = stat.Mean(scores)
	m.MedianScore = stat.Median(scores)
	m.StdDevScore = stat.StdDev(scores)
	m.ConfidenceInterval = confidenceInterval(scores, m.AverageScore, m.StdDevScore, o.confidenceLevel)

	m.ByCategory = byCategory(results)
	m.ByScorer = byScorer(results)
	m.CustomMetrics = customMetrics(results, scores)
	return m
}

// flattenScores collects every scorer score across all cases, in case
// order then run order.
func flattenScores(results []TestCaseResult) []float64 {
	var scores []float64
	for _, r := range results {
		for _, run := range r.ScorerResults {
			if run.Result == nil {
				continue
			}
			scores = append(scores, run.Result.Score)
		}
	}
	return scores
}

// tValue returns the two-sided critical value for the fixed confidence
// table. Unknown levels use the 95% value.
func tValue(level float64) float64 {
	switch level {
	case 0.99:
		return 2.576
	case 0.95:
		return 1.96
	case 0.90:
		return 1.645
	default:
		return 1.96
	}
}

// confidenceInterval bounds the mean as mean +/- t*stddev/sqrt(n).
// Fewer than two samples give no interval.
func confidenceInterval(scores []float64, mean, stdDev, level float64) *ConfidenceInterval {
	if len(scores) < 2 {
		return nil
	}
	margin := tValue(level) * stdDev / math.Sqrt(float64(len(scores)))
	return &ConfidenceInterval{Lower: mean - margin, Upper: mean + margin}
}

type group struct {
	count  int
	passed int
	scores []float64
}

func (g *group) metrics() GroupMetrics {
	return GroupMetrics{
		Count:        g.count,
		PassRate:     float64(g.passed) / float64(g.count),
		AverageScore: stat.Mean(g.scores),
		MedianScore:  stat.Median(g.scores),
	}
}

// byCategory groups cases by category label. The count and pass rate
// are case-level; the score statistics cover every run in the group.
func byCategory(results []TestCaseResult) map[string]GroupMetrics {
	groups := make(map[string]*group)
	for _, r := range results {
		cat := r.Category
		if cat == "" {
			cat = DefaultCategory
		}
		g := groups[cat]
		if g == nil {
			g = &group{}
			groups[cat] = g
		}
		g.count++
		if r.Passed {
			g.passed++
		}
		for _, run := range r.ScorerResults {
			if run.Result != nil {
				g.scores = append(g.scores, run.Result.Score)
			}
		}
	}

	out := make(map[string]GroupMetrics, len(groups))
	for cat, g := range groups {
		out[cat] = g.metrics()
	}
	return out
}

// byScorer groups runs by scorer name across all cases. The count and
// pass rate are run-level, judged by each run's own Passed flag.
func byScorer(results []TestCaseResult) map[string]GroupMetrics {
	groups := make(map[string]*group)
	for _, r := range results {
		for _, run := range r.ScorerResults {
			if run.Result == nil {
				continue
			}
			g := groups[run.ScorerName]
			if g == nil {
				g = &group{}
				groups[run.ScorerName] = g
			}
			g.count++
			if run.Result.Passed {
				g.passed++
			}
			g.scores = append(g.scores, run.Result.Score)
		}
	}

	out := make(map[string]GroupMetrics, len(groups))
	for name, g := range groups {
		out[name] = g.metrics()
	}
	return out
}

// customMetrics emits avg_<key> and median_<key> for every breakdown
// key seen across all runs, filtering non-finite values, plus p25 to
// p99 percentiles of the flattened score distribution.
func customMetrics(results []TestCaseResult, scores []float64) map[string]float64 {
	valuesByKey := make(map[string][]float64)
	for _, r := range results {
		for _, run := range r.ScorerResults {
			if run.Result == nil {
				continue
			}
			for key, v := range run.Result.Breakdown {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				valuesByKey[key] = append(valuesByKey[key], v)
			}
		}
	}

	out := make(map[string]float64, 2*len(valuesByKey)+6)
	for key, vals := range valuesByKey {
		out["avg_"+key] = stat.Mean(vals)
		out["median_"+key] = stat.Median(vals)
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	for _, p := range []int{25, 50, 75, 90, 95, 99} {
		out[fmt.Sprintf("p%d", p)] = stat.Percentile(sorted, float64(p))
	}
	return out
}
