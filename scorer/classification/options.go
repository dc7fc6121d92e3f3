//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package classification

// Metric selects which confusion-matrix metric becomes the headline
// score.
type Metric string

const (
	// MetricPrecision scores TP / (TP + FP).
	MetricPrecision Metric = "precision"
	// MetricRecall scores TP / (TP + FN).
	MetricRecall Metric = "recall"
	// MetricF1 scores the harmonic mean of precision and recall.
	MetricF1 Metric = "f1"
)

// options holds the scorer configuration. It is fixed once New returns.
type options struct {
	metric    Metric
	threshold float64
	perClass  bool
	minScore  float64
}

func defaultOptions() *options {
	return &options{
		metric:    MetricF1,
		threshold: 0.5,
		minScore:  0.7,
	}
}

// Option configures the classification scorer.
type Option func(*options)

// WithMetric selects the headline metric. Defaults to f1.
func WithMetric(m Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithThreshold sets the binarization threshold numeric inputs are
// compared against. Defaults to 0.5.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithPerClass enables one-vs-rest metrics per distinct class value in
// the breakdown. Off by default.
func WithPerClass(perClass bool) Option {
	return func(o *options) {
		o.perClass = perClass
	}
}

// WithMinScore sets the passing threshold for the headline score.
// Defaults to 0.7.
func WithMinScore(minScore float64) Option {
	return func(o *options) {
		o.minScore = minScore
	}
}
