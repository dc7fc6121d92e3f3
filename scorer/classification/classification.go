//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package classification provides the confusion-matrix scorer. It
// normalizes predictions and labels to binary classes, counts the matrix
// and scores one of precision, recall or f1 against a passing threshold.
package classification

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

// Name is the scorer's registered name.
const Name = "classification_metrics"

const (
	// BreakdownKeyPrecision through BreakdownKeyFalseNegatives are the
	// breakdown keys always present in a successful result.
	BreakdownKeyPrecision      = "precision"
	BreakdownKeyRecall         = "recall"
	BreakdownKeyF1             = "f1"
	BreakdownKeyAccuracy       = "accuracy"
	BreakdownKeyTruePositives  = "truePositives"
	BreakdownKeyTrueNegatives  = "trueNegatives"
	BreakdownKeyFalsePositives = "falsePositives"
	BreakdownKeyFalseNegatives = "falseNegatives"

	// MetadataKeyConfusion is the metadata key holding the
	// scorer.ConfusionCounts value.
	MetadataKeyConfusion = "confusion"
)

// Scorer computes confusion-matrix metrics. The configuration is fixed
// at construction and the scorer is safe for concurrent use.
type Scorer struct {
	opts *options
}

// New creates a classification scorer with the given options.
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
		Metric    string  `mapstructure:"metric"`
		Threshold float64 `mapstructure:"threshold"`
		PerClass  bool    `mapstructure:"perClass"`
		MinScore  float64 `mapstructure:"minScore"`
	}{
		Metric:    string(MetricF1),
		Threshold: 0.5,
		MinScore:  0.7,
	}
	if err := scorer.DecodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	metric := Metric(cfg.Metric)
	switch metric {
	case MetricPrecision, MetricRecall, MetricF1:
	default:
		return nil, fmt.Errorf("unknown classification metric %q", cfg.Metric)
	}
	return New(
		WithMetric(metric),
		WithThreshold(cfg.Threshold),
		WithPerClass(cfg.PerClass),
		WithMinScore(cfg.MinScore),
	), nil
}

// Name returns the scorer's registered name.
func (s *Scorer) Name() string { return Name }

// Score normalizes output (predictions) and expected (labels) to binary
// classes, counts the confusion matrix and reports the configured metric
// as the score. Malformed input never panics: length mismatches, empty
// inputs and uninterpretable labels all come back as zero-score failure
// results.
func (s *Scorer) Score(_ context.Context, output, expected any, _ *scorer.Context) *scorer.Result {
	predRaw, labelRaw, err := extractPairs(output, expected)
	if err != nil {
		return scorer.FailResult("invalid classification input", err)
	}
	if len(predRaw) != len(labelRaw) {
		return scorer.FailResult(
			fmt.Sprintf("predictions and labels have different lengths (%d vs %d)", len(predRaw), len(labelRaw)), nil)
	}
	if len(predRaw) == 0 {
		return scorer.FailResult("no predictions to score", nil)
	}

	predictions, err := normalizeAll(predRaw, s.opts.threshold)
	if err != nil {
		return scorer.FailResult("cannot normalize predictions", err)
	}
	labels, err := normalizeAll(labelRaw, s.opts.threshold)
	if err != nil {
		return scorer.FailResult("cannot normalize labels", err)
	}

	c := count(predictions, labels)
	p, r, f, acc := precision(c), recall(c), f1(c), accuracy(c)

	var score float64
	switch s.opts.metric {
	case MetricPrecision:
		score = p
	case MetricRecall:
		score = r
	case MetricF1:
		score = f
	default:
		return scorer.FailResult(fmt.Sprintf("unknown classification metric %q", s.opts.metric), nil)
	}

	breakdown := map[string]float64{
		BreakdownKeyPrecision:      p,
		BreakdownKeyRecall:         r,
		BreakdownKeyF1:             f,
		BreakdownKeyAccuracy:       acc,
		BreakdownKeyTruePositives:  float64(c.TruePositives),
		BreakdownKeyTrueNegatives:  float64(c.TrueNegatives),
		BreakdownKeyFalsePositives: float64(c.FalsePositives),
		BreakdownKeyFalseNegatives: float64(c.FalseNegatives),
	}
	if s.opts.perClass {
		s.addPerClass(breakdown, predictions, labels)
	}

	return &scorer.Result{
		Score:  score,
		Passed: score >= s.opts.minScore,
		Reason: fmt.Sprintf("%s=%.4f (min %.2f); TP=%d TN=%d FP=%d FN=%d",
			s.opts.metric, score, s.opts.minScore,
			c.TruePositives, c.TrueNegatives, c.FalsePositives, c.FalseNegatives),
		Breakdown: breakdown,
		Metadata:  map[string]any{MetadataKeyConfusion: c},
	}
}

// addPerClass adds one-vs-rest precision, recall and f1 per distinct
// class value.
func (s *Scorer) addPerClass(breakdown map[string]float64, predictions, labels []int) {
	for _, class := range classes(predictions, labels) {
		c := count(oneVsRest(predictions, class), oneVsRest(labels, class))
		breakdown[fmt.Sprintf("precision_class_%d", class)] = precision(c)
		breakdown[fmt.Sprintf("recall_class_%d", class)] = recall(c)
		breakdown[fmt.Sprintf("f1_class_%d", class)] = f1(c)
	}
}
