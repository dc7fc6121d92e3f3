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
	"sort"

	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

// count builds the binary confusion matrix from parallel 0/1 slices.
// The slices must have equal length.
func count(predictions, labels []int) scorer.ConfusionCounts {
	var c scorer.ConfusionCounts
	for i, p := range predictions {
		switch {
		case p == 1 && labels[i] == 1:
			c.TruePositives++
		case p == 0 && labels[i] == 0:
			c.TrueNegatives++
		case p == 1 && labels[i] == 0:
			c.FalsePositives++
		default:
			c.FalseNegatives++
		}
	}
	return c
}

// precision is TP / (TP + FP), or 0 when nothing was predicted positive.
func precision(c scorer.ConfusionCounts) float64 {
	denom := c.TruePositives + c.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(denom)
}

// recall is TP / (TP + FN), or 0 when nothing was actually positive.
func recall(c scorer.ConfusionCounts) float64 {
	denom := c.TruePositives + c.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(denom)
}

// f1 is the harmonic mean of precision and recall, or 0 when both are 0.
func f1(c scorer.ConfusionCounts) float64 {
	p, r := precision(c), recall(c)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// accuracy is (TP + TN) / total, or 0 on an empty matrix.
func accuracy(c scorer.ConfusionCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.TruePositives+c.TrueNegatives) / float64(total)
}

// classes returns the distinct values across both slices in ascending
// order.
func classes(predictions, labels []int) []int {
	seen := make(map[int]struct{}, 2)
	for _, v := range predictions {
		seen[v] = struct{}{}
	}
	for _, v := range labels {
		seen[v] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// oneVsRest projects values onto a binary view of a single class.
func oneVsRest(values []int, class int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		if v == class {
			out[i] = 1
		}
	}
	return out
}
