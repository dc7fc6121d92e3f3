//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package structural

// options holds the comparison configuration. It is fixed once New
// returns.
type options struct {
	ignoreKeyOrder  bool
	caseInsensitive bool
	trimWhitespace  bool
	ignorePaths     []string
}

func defaultOptions() *options {
	return &options{
		ignoreKeyOrder: true,
		trimWhitespace: true,
	}
}

// Option configures the exact-match scorer.
type Option func(*options)

// WithIgnoreKeyOrder controls object traversal. When true (the default)
// keys are walked in sorted order, giving a deterministic difference
// list. Go maps carry no insertion order, so disabling this only makes
// the list ordering follow the map's natural iteration order; the set of
// differences is the same either way.
func WithIgnoreKeyOrder(ignore bool) Option {
	return func(o *options) {
		o.ignoreKeyOrder = ignore
	}
}

// WithCaseInsensitive enables Unicode case folding before string
// comparison. Off by default.
func WithCaseInsensitive(insensitive bool) Option {
	return func(o *options) {
		o.caseInsensitive = insensitive
	}
}

// WithTrimWhitespace controls trimming of leading and trailing
// whitespace before string comparison. On by default.
func WithTrimWhitespace(trim bool) Option {
	return func(o *options) {
		o.trimWhitespace = trim
	}
}

// WithIgnorePaths excludes paths from the comparison. Patterns are
// literal paths in dot/bracket notation rooted at "root", where "*"
// matches any run of characters including separators: "root.*.timestamp"
// matches "root.user.timestamp" and "root.items[2].meta.timestamp" but
// not "root.timestamp". No difference is recorded at a matching path and
// nothing beneath it is visited.
func WithIgnorePaths(paths ...string) Option {
	return func(o *options) {
		o.ignorePaths = append(o.ignorePaths, paths...)
	}
}
