//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package classification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

func TestMetricFunctions(t *testing.T) {
	tests := []struct {
		name          string
		c             scorer.ConfusionCounts
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
		wantAccuracy  float64
	}{
		{
			name:          "balanced",
			c:             scorer.ConfusionCounts{TruePositives: 2, TrueNegatives: 2, FalsePositives: 1, FalseNegatives: 1},
			wantPrecision: 2.0 / 3.0,
			wantRecall:    2.0 / 3.0,
			wantF1:        2.0 / 3.0,
			wantAccuracy:  4.0 / 6.0,
		},
		{
			name:          "no positive predictions",
			c:             scorer.ConfusionCounts{TrueNegatives: 4},
			wantPrecision: 0,
			wantRecall:    0,
			wantF1:        0,
			wantAccuracy:  1,
		},
		{
			name:          "perfect",
			c:             scorer.ConfusionCounts{TruePositives: 3, TrueNegatives: 2},
			wantPrecision: 1,
			wantRecall:    1,
			wantF1:        1,
			wantAccuracy:  1,
		},
		{
			name: "empty",
			c:    scorer.ConfusionCounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantPrecision, precision(tt.c), 1e-9)
			assert.InDelta(t, tt.wantRecall, recall(tt.c), 1e-9)
			assert.InDelta(t, tt.wantF1, f1(tt.c), 1e-9)
			assert.InDelta(t, tt.wantAccuracy, accuracy(tt.c), 1e-9)
		})
	}
}

func TestScorePrecisionFixture(t *testing.T) {
	s := New(WithMetric(MetricPrecision))

	result := s.Score(context.Background(), []any{1, 1, 1, 1}, []any{1, 1, 0, 0}, nil)

	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.False(t, result.Passed)
	assert.Equal(t, 2.0, result.Breakdown[BreakdownKeyTruePositives])
	assert.Equal(t, 2.0, result.Breakdown[BreakdownKeyFalsePositives])

	c, ok := result.Metadata[MetadataKeyConfusion].(scorer.ConfusionCounts)
	require.True(t, ok)
	assert.Equal(t, scorer.ConfusionCounts{TruePositives: 2, FalsePositives: 2}, c)
}

func TestScoreRecallFixture(t *testing.T) {
	s := New(WithMetric(MetricRecall))

	result := s.Score(context.Background(), []any{1, 1, 0, 0}, []any{1, 1, 1, 1}, nil)

	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.Equal(t, 2.0, result.Breakdown[BreakdownKeyTruePositives])
	assert.Equal(t, 2.0, result.Breakdown[BreakdownKeyFalseNegatives])
}

func TestScoreAllNegatives(t *testing.T) {
	s := New(WithMetric(MetricPrecision))

	result := s.Score(context.Background(), []any{0, 0, 0, 0}, []any{0, 0, 0, 0}, nil)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 4.0, result.Breakdown[BreakdownKeyTrueNegatives])
	assert.Equal(t, 1.0, result.Breakdown[BreakdownKeyAccuracy])
}

func TestScorePerfectF1Passes(t *testing.T) {
	s := New()

	result := s.Score(context.Background(), []any{1, 0, 1}, []any{1, 0, 1}, nil)

	assert.Equal(t, 1.0, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, 1.0, result.Breakdown[BreakdownKeyF1])
}

func TestScoreMinScore(t *testing.T) {
	// f1 of this fixture is 2/3, which clears 0.6 but not the 0.7
	// default.
	preds := []any{1, 1, 0, 0, 1, 0}
	labels := []any{1, 1, 1, 0, 0, 0}

	low := New(WithMinScore(0.6)).Score(context.Background(), preds, labels, nil)
	assert.InDelta(t, 2.0/3.0, low.Score, 1e-9)
	assert.True(t, low.Passed)

	def := New().Score(context.Background(), preds, labels, nil)
	assert.False(t, def.Passed)
}

func TestScoreInputShapes(t *testing.T) {
	s := New(WithMetric(MetricPrecision))

	// Object shape.
	result := s.Score(context.Background(), map[string]any{
		"predictions": []any{1, 1},
		"labels":      []any{1, 0},
	}, nil, nil)
	assert.InDelta(t, 0.5, result.Score, 1e-9)

	// Scalar pair.
	result = s.Score(context.Background(), true, "yes", nil)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 1.0, result.Breakdown[BreakdownKeyTruePositives])

	// Mixed spellings normalize to the same classes.
	result = s.Score(context.Background(),
		[]any{"true", "0.9", 0, false},
		[]any{1, "yes", "negative", "0.2"}, nil)
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreFailures(t *testing.T) {
	s := New()

	// Length mismatch.
	result := s.Score(context.Background(), []any{1, 0}, []any{1}, nil)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Reason, "different lengths")
	assert.Contains(t, result.Metadata[scorer.MetadataKeyError], "different lengths")

	// Empty inputs.
	result = s.Score(context.Background(), []any{}, []any{}, nil)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Reason, "no predictions")

	// Unparsable label.
	result = s.Score(context.Background(), []any{1}, []any{"maybe"}, nil)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Metadata[scorer.MetadataKeyError], `"maybe"`)
}

func TestScoreUnknownMetric(t *testing.T) {
	s := New(WithMetric(Metric("bogus")))

	result := s.Score(context.Background(), []any{1}, []any{1}, nil)

	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Reason, "unknown classification metric")
}

func TestScorePerClass(t *testing.T) {
	s := New(WithPerClass(true))

	result := s.Score(context.Background(), []any{1, 0, 1, 0}, []any{1, 1, 0, 0}, nil)

	// One hit and one miss per class in this fixture.
	assert.InDelta(t, 0.5, result.Breakdown["precision_class_1"], 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown["recall_class_1"], 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown["f1_class_1"], 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown["precision_class_0"], 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown["recall_class_0"], 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown["f1_class_0"], 1e-9)
}

func TestScorePerClassOff(t *testing.T) {
	s := New()

	result := s.Score(context.Background(), []any{1, 0}, []any{1, 0}, nil)

	_, ok := result.Breakdown["precision_class_1"]
	assert.False(t, ok)
}

func TestNewFromConfig(t *testing.T) {
	got, err := NewFromConfig(map[string]any{
		"metric":    "precision",
		"threshold": 0.6,
		"perClass":  true,
		"minScore":  0.9,
	})
	require.NoError(t, err)

	s := got.(*Scorer)
	assert.Equal(t, MetricPrecision, s.opts.metric)
	assert.Equal(t, 0.6, s.opts.threshold)
	assert.True(t, s.opts.perClass)
	assert.Equal(t, 0.9, s.opts.minScore)
}

func TestNewFromConfigDefaults(t *testing.T) {
	got, err := NewFromConfig(nil)
	require.NoError(t, err)

	s := got.(*Scorer)
	assert.Equal(t, MetricF1, s.opts.metric)
	assert.Equal(t, 0.5, s.opts.threshold)
	assert.False(t, s.opts.perClass)
	assert.Equal(t, 0.7, s.opts.minScore)
}

func TestNewFromConfigRejectsUnknownMetric(t *testing.T) {
	_, err := NewFromConfig(map[string]any{"metric": "specificity"})
	assert.Error(t, err)
}
