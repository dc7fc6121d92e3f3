//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
)

func TestTextSections(t *testing.T) {
	out := Text(sampleMetrics())

	assert.True(t, strings.HasPrefix(out, "=== Evaluation Report ==="))
	assert.Contains(t, out, "Total Cases: 3")
	assert.Contains(t, out, "Passed:      2")
	assert.Contains(t, out, "Failed:      1")
	assert.Contains(t, out, "Pass Rate:   66.7%")
	assert.Contains(t, out, "Average:  0.7000")
	assert.Contains(t, out, "Median:   0.7000")
	assert.Contains(t, out, "CI:       [")
	assert.Contains(t, out, "Categories:")
	assert.Contains(t, out, "math")
	assert.Contains(t, out, aggregate.DefaultCategory)
	assert.Contains(t, out, "Scorers:")
	assert.Contains(t, out, "exact_match")
	assert.Contains(t, out, "recall_at_k")
	assert.Contains(t, out, "Custom Metrics:")
	assert.Contains(t, out, "p50")
}

func TestTextSectionOrder(t *testing.T) {
	out := Text(sampleMetrics())

	overall := strings.Index(out, "Overall:")
	scores := strings.Index(out, "Scores:")
	categories := strings.Index(out, "Categories:")
	scorers := strings.Index(out, "Scorers:")
	custom := strings.Index(out, "Custom Metrics:")

	assert.True(t, overall < scores)
	assert.True(t, scores < categories)
	assert.True(t, categories < scorers)
	assert.True(t, scorers < custom)
}

func TestTextSortsGroupNames(t *testing.T) {
	out := Text(sampleMetrics())
	assert.Less(t, strings.Index(out, "math"), strings.Index(out, aggregate.DefaultCategory))
}

func TestTextEmptyMetrics(t *testing.T) {
	out := Text(aggregate.Calculate(nil))

	assert.Contains(t, out, "Total Cases: 0")
	assert.NotContains(t, out, "CI:")
	assert.NotContains(t, out, "Categories:")
	assert.NotContains(t, out, "Scorers:")
	assert.NotContains(t, out, "Custom Metrics:")
}
