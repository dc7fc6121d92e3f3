//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package structural

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

func TestScoreExactMatch(t *testing.T) {
	s := New()
	value := map[string]any{
		"name":  "Ada",
		"tags":  []any{"x", "y"},
		"stats": map[string]any{"wins": 3},
	}

	result := s.Score(context.Background(), value, value, nil)

	assert.Equal(t, 1.0, result.Score)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Reason)
	assert.Equal(t, 1.0, result.Breakdown[BreakdownKeySimilarity])
	assert.Equal(t, 0.0, result.Breakdown[BreakdownKeyDifferenceCount])

	diffs, ok := result.Metadata[MetadataKeyDifferences].([]scorer.Difference)
	require.True(t, ok)
	assert.Empty(t, diffs)
}

func TestScoreMismatch(t *testing.T) {
	s := New()
	actual := map[string]any{"a": 1, "b": 2}
	expected := map[string]any{"a": 1, "b": 3}

	result := s.Score(context.Background(), actual, expected, nil)

	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Reason, "different: root.b")
	// One differing key out of a two-key union.
	assert.InDelta(t, 0.5, result.Breakdown[BreakdownKeySimilarity], 1e-9)
	assert.Equal(t, 1.0, result.Breakdown[BreakdownKeyDifferenceCount])
}

func TestScoreSwapSymmetry(t *testing.T) {
	s := New()
	left := map[string]any{"onlyLeft": 1, "shared": "same"}
	right := map[string]any{"onlyRight": 2, "shared": "same"}

	forward := s.Score(context.Background(), left, right, nil)
	backward := s.Score(context.Background(), right, left, nil)

	fDiffs := forward.Metadata[MetadataKeyDifferences].([]scorer.Difference)
	bDiffs := backward.Metadata[MetadataKeyDifferences].([]scorer.Difference)
	require.Len(t, fDiffs, 2)
	require.Len(t, bDiffs, 2)

	kinds := func(diffs []scorer.Difference) map[string]scorer.DiffKind {
		m := make(map[string]scorer.DiffKind, len(diffs))
		for _, d := range diffs {
			m[d.Path] = d.Kind
		}
		return m
	}

	f, b := kinds(fDiffs), kinds(bDiffs)
	// Swapping the sides flips missing and extra for the same paths.
	assert.Equal(t, scorer.DiffExtra, f["root.onlyLeft"])
	assert.Equal(t, scorer.DiffMissing, f["root.onlyRight"])
	assert.Equal(t, scorer.DiffMissing, b["root.onlyLeft"])
	assert.Equal(t, scorer.DiffExtra, b["root.onlyRight"])
}

func TestScoreArraySimilarity(t *testing.T) {
	s := New()
	actual := []any{1, 2, 3, 9}
	expected := []any{1, 2, 3, 4}

	result := s.Score(context.Background(), actual, expected, nil)

	assert.Equal(t, 0.0, result.Score)
	// One differing index out of four.
	assert.InDelta(t, 0.75, result.Breakdown[BreakdownKeySimilarity], 1e-9)
}

func TestScoreReasonCapsPaths(t *testing.T) {
	s := New()
	actual := map[string]any{}
	expected := map[string]any{"k1": 1, "k2": 2, "k3": 3, "k4": 4, "k5": 5}

	result := s.Score(context.Background(), actual, expected, nil)

	assert.Equal(t, "5 differences found: missing: root.k1, root.k2, root.k3 (+2 more)", result.Reason)
}

func TestScoreReasonGroupsKinds(t *testing.T) {
	s := New()
	actual := map[string]any{"extra": 1, "shared": "x"}
	expected := map[string]any{"gone": 2, "shared": "y"}

	result := s.Score(context.Background(), actual, expected, nil)

	require.Equal(t, 3.0, result.Breakdown[BreakdownKeyDifferenceCount])
	assert.True(t, strings.HasPrefix(result.Reason, "3 differences found: "), result.Reason)
	assert.Contains(t, result.Reason, "missing: root.gone")
	assert.Contains(t, result.Reason, "extra: root.extra")
	assert.Contains(t, result.Reason, "different: root.shared")
}

func TestScoreSimilarityClampsAtZero(t *testing.T) {
	s := New()
	// A single root key hiding many nested differences drives the raw
	// ratio negative; the reported similarity floors at zero.
	actual := map[string]any{"user": map[string]any{"a": 1, "b": 2, "c": 3}}
	expected := map[string]any{"user": map[string]any{"a": 9, "b": 8, "c": 7}}

	result := s.Score(context.Background(), actual, expected, nil)

	assert.Equal(t, 3.0, result.Breakdown[BreakdownKeyDifferenceCount])
	assert.Equal(t, 0.0, result.Breakdown[BreakdownKeySimilarity])
}

func TestScoreScalars(t *testing.T) {
	s := New()

	result := s.Score(context.Background(), "yes", "yes", nil)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 1.0, result.Breakdown[BreakdownKeySimilarity])

	result = s.Score(context.Background(), "yes", "no", nil)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0.0, result.Breakdown[BreakdownKeySimilarity])
}

func TestNewFromConfig(t *testing.T) {
	got, err := NewFromConfig(map[string]any{
		"caseInsensitive": true,
		"trimWhitespace":  false,
		"ignorePaths":     []string{"root.ts"},
	})
	require.NoError(t, err)

	s, ok := got.(*Scorer)
	require.True(t, ok)
	assert.Equal(t, Name, s.Name())
	assert.True(t, s.opts.caseInsensitive)
	assert.False(t, s.opts.trimWhitespace)
	assert.True(t, s.opts.ignoreKeyOrder)
	assert.Equal(t, []string{"root.ts"}, s.opts.ignorePaths)
}

func TestNewFromConfigDefaults(t *testing.T) {
	got, err := NewFromConfig(nil)
	require.NoError(t, err)

	s := got.(*Scorer)
	assert.True(t, s.opts.ignoreKeyOrder)
	assert.True(t, s.opts.trimWhitespace)
	assert.False(t, s.opts.caseInsensitive)
	assert.Empty(t, s.opts.ignorePaths)
}
