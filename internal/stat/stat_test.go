//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{2}))
	assert.InDelta(t, 0.7, Mean([]float64{0.5, 0.7, 0.9}), 1e-9)
	assert.InDelta(t, -1.0, Mean([]float64{-3, 1}), 1e-9)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 0.7, Median([]float64{0.5, 0.7, 0.9}))
	assert.Equal(t, 0.7, Median([]float64{0.9, 0.5, 0.7}))
	assert.InDelta(t, 2.5, Median([]float64{4, 1, 3, 2}), 1e-9)

	// The input stays untouched.
	xs := []float64{3, 1, 2}
	Median(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestStdDevPopulation(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	// Classic population fixture: variance 4, stddev 2.
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.InDelta(t, 0.5, StdDev([]float64{0, 1}), 1e-9)
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, 0.0, Percentile(nil, 50))

	sorted := []float64{10, 20, 30, 40}
	assert.Equal(t, 10.0, Percentile(sorted, 0))
	assert.Equal(t, 40.0, Percentile(sorted, 100))
	// Index 0.5*(4-1)=1.5 interpolates between 20 and 30.
	assert.InDelta(t, 25.0, Percentile(sorted, 50), 1e-9)
	// Clamping.
	assert.Equal(t, 10.0, Percentile(sorted, -5))
	assert.Equal(t, 40.0, Percentile(sorted, 110))
}

func TestPercentileUniformDistribution(t *testing.T) {
	// Scores 0.01 .. 1.00.
	sorted := make([]float64, 100)
	for i := range sorted {
		sorted[i] = float64(i+1) / 100
	}

	assert.InDelta(t, 0.25, Percentile(sorted, 25), 0.01)
	assert.InDelta(t, 0.50, Percentile(sorted, 50), 0.01)
	assert.InDelta(t, 0.75, Percentile(sorted, 75), 0.01)
	assert.InDelta(t, 0.90, Percentile(sorted, 90), 0.01)
	assert.InDelta(t, 0.95, Percentile(sorted, 95), 0.01)
	assert.InDelta(t, 0.99, Percentile(sorted, 99), 0.01)
}
