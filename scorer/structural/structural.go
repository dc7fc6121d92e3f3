//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package structural provides the exact-match scorer. It walks actual and
// expected values recursively, records every divergence as a typed
// difference and scores 1.0 only when the two values match exactly under
// the configured comparison rules.
package structural

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/internal/coerce"
	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

// Name is the scorer's registered name.
const Name = "exact_match"

const (
	// BreakdownKeySimilarity is the breakdown key holding the root-level
	// similarity ratio.
	BreakdownKeySimilarity = "similarity"
	// BreakdownKeyDifferenceCount is the breakdown key holding the total
	// number of differences.
	BreakdownKeyDifferenceCount = "differenceCount"
	// MetadataKeyDifferences is the metadata key holding the flattened
	// difference list.
	MetadataKeyDifferences = "differences"
)

// rootPath is the path every comparison starts from.
const rootPath = "root"

// maxReasonPaths caps the number of paths listed per difference kind in
// the result reason.
const maxReasonPaths = 3

// Scorer compares structured values for exact equality. The configuration
// is fixed at construction and the scorer is safe for concurrent use.
type Scorer struct {
	opts    *options
	ignored *pathMatcher
}

// New creates an exact-match scorer with the given options.
func New(opts ...Option) *Scorer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Scorer{
		opts:    o,
		ignored: compilePathMatcher(o.ignorePaths),
	}
}

// NewFromConfig builds the scorer from a configuration map. It is the
// registry factory for Name.
func NewFromConfig(config map[string]any) (scorer.Scorer, error) {
	cfg := struct {
		IgnoreKeyOrder  bool     `mapstructure:"ignoreKeyOrder"`
		CaseInsensitive bool     `mapstructure:"caseInsensitive"`
		TrimWhitespace  bool     `mapstructure:"trimWhitespace"`
		IgnorePaths     []string `mapstructure:"ignorePaths"`
	}{
		IgnoreKeyOrder: true,
		TrimWhitespace: true,
	}
	if err := scorer.DecodeConfig(config, &cfg); err != nil {
		return nil, err
	}
	return New(
		WithIgnoreKeyOrder(cfg.IgnoreKeyOrder),
		WithCaseInsensitive(cfg.CaseInsensitive),
		WithTrimWhitespace(cfg.TrimWhitespace),
		WithIgnorePaths(cfg.IgnorePaths...),
	), nil
}

// Name returns the scorer's registered name.
func (s *Scorer) Name() string { return Name }

// Score compares output against expected. The score is 1.0 only when no
// differences remain after applying the comparison rules, 0.0 otherwise.
// The breakdown carries the root-level similarity ratio and the total
// difference count; the metadata carries the full difference list.
func (s *Scorer) Score(_ context.Context, output, expected any, _ *scorer.Context) *scorer.Result {
	diffs := make([]scorer.Difference, 0)
	s.compare(rootPath, output, expected, &diffs)

	score := 0.0
	if len(diffs) == 0 {
		score = 1.0
	}

	result := &scorer.Result{
		Score:  score,
		Passed: score == 1.0,
		Breakdown: map[string]float64{
			BreakdownKeySimilarity:      s.rootSimilarity(output, expected, len(diffs)),
			BreakdownKeyDifferenceCount: float64(len(diffs)),
		},
		Metadata: map[string]any{MetadataKeyDifferences: diffs},
	}
	if len(diffs) > 0 {
		result.Reason = summarizeDifferences(diffs)
	}
	return result
}

// rootSimilarity computes the similarity ratio at the root level only.
// Nested levels keep their own ratios out of this number: the root counts
// every collected difference against its own width (array length or key
// union size).
func (s *Scorer) rootSimilarity(output, expected any, diffCount int) float64 {
	output, expected = coerce.Indirect(output), coerce.Indirect(expected)

	if actualArr, ok := coerce.Slice(output); ok {
		if _, ok := coerce.Slice(expected); ok {
			width := len(actualArr)
			if width < 1 {
				width = 1
			}
			return clampRatio(1 - float64(diffCount)/float64(width))
		}
	}
	if actualObj, ok := coerce.Map(output); ok {
		if expectedObj, ok := coerce.Map(expected); ok {
			union := make(map[string]struct{}, len(actualObj)+len(expectedObj))
			for k := range actualObj {
				union[k] = struct{}{}
			}
			for k := range expectedObj {
				union[k] = struct{}{}
			}
			if len(union) == 0 {
				return 1
			}
			return clampRatio(1 - float64(diffCount)/float64(len(union)))
		}
	}
	if diffCount == 0 {
		return 1
	}
	return 0
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	return r
}

// summarizeDifferences renders a compact reason grouping paths by kind.
// At most maxReasonPaths paths are listed per kind, the rest collapse
// into a "+N more" suffix.
func summarizeDifferences(diffs []scorer.Difference) string {
	byKind := make(map[scorer.DiffKind][]string)
	for _, d := range diffs {
		byKind[d.Kind] = append(byKind[d.Kind], d.Path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d difference", len(diffs))
	if len(diffs) != 1 {
		b.WriteString("s")
	}
	b.WriteString(" found")

	sep := ": "
	for _, kind := range []scorer.DiffKind{
		scorer.DiffMissing, scorer.DiffExtra, scorer.DiffDifferent, scorer.DiffTypeMismatch,
	} {
		paths := byKind[kind]
		if len(paths) == 0 {
			continue
		}
		b.WriteString(sep)
		sep = "; "
		shown := paths
		if len(shown) > maxReasonPaths {
			shown = shown[:maxReasonPaths]
		}
		fmt.Fprintf(&b, "%s: %s", kind, strings.Join(shown, ", "))
		if rest := len(paths) - len(shown); rest > 0 {
			fmt.Fprintf(&b, " (+%d more)", rest)
		}
	}
	return b.String()
}
