//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package retrieval

// defaultK is the cutoff used when no K is configured.
const defaultK = 10

// options holds the scorer configuration. It is fixed once New returns.
type options struct {
	k         int
	minRecall float64
	normalize bool
}

func defaultOptions() *options {
	return &options{
		k:         defaultK,
		minRecall: 0.8,
		normalize: true,
	}
}

// Option configures the recall scorer.
type Option func(*options)

// WithK sets the retrieval cutoff. Defaults to 10. Values below 1 are
// rejected at scoring time.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithMinRecall sets the recall a result must reach to pass. Defaults
// to 0.8 and always compares against raw recall in [0, 1].
func WithMinRecall(minRecall float64) Option {
	return func(o *options) {
		o.minRecall = minRecall
	}
}

// WithNormalize controls the score scale: recall in [0, 1] when true
// (the default), recall*100 when false. The pass decision is unaffected.
func WithNormalize(normalize bool) Option {
	return func(o *options) {
		o.normalize = normalize
	}
}
