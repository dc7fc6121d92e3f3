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
	"fmt"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
)

// Text renders a fixed-width plain-text report. Sections with no data
// (no categories, no custom metrics) are omitted. Map-backed sections
// are sorted by key so the output is deterministic.
func Text(m *aggregate.AggregatedMetrics) string {
	var b strings.Builder
	b.WriteString("=== Evaluation Report ===\n\n")
	writeTextBody(&b, m)
	return b.String()
}

// textBody renders the report sections without the banner. The PDF
// formatter reuses it under its own title.
func textBody(m *aggregate.AggregatedMetrics) string {
	var b strings.Builder
	writeTextBody(&b, m)
	return b.String()
}

func writeTextBody(b *strings.Builder, m *aggregate.AggregatedMetrics) {
	writeOverall(b, m)
	writeScoreStats(b, m)
	writeGroups(b, "Categories", "cases", m.ByCategory)
	writeGroups(b, "Scorers", "runs", m.ByScorer)
	writeCustomMetrics(b, m.CustomMetrics)
}

func writeOverall(b *strings.Builder, m *aggregate.AggregatedMetrics) {
	b.WriteString("Overall:\n")
	b.WriteString(fmt.Sprintf("  Total Cases: %d\n", m.TotalCases))
	b.WriteString(fmt.Sprintf("  Passed:      %d\n", m.PassedCases))
	b.WriteString(fmt.Sprintf("  Failed:      %d\n", m.FailedCases))
	b.WriteString(fmt.Sprintf("  Pass Rate:   %.1f%%\n\n", m.PassRate*100))
}

func writeScoreStats(b *strings.Builder, m *aggregate.AggregatedMetrics) {
	b.WriteString("Scores:\n")
	b.WriteString(fmt.Sprintf("  Average:  %.4f\n", m.AverageScore))
	b.WriteString(fmt.Sprintf("  Median:   %.4f\n", m.MedianScore))
	b.WriteString(fmt.Sprintf("  Std Dev:  %.4f\n", m.StdDevScore))
	if ci := m.ConfidenceInterval; ci != nil {
		b.WriteString(fmt.Sprintf("  CI:       [%.4f, %.4f]\n", ci.Lower, ci.Upper))
	}
	b.WriteString("\n")
}

func writeGroups(b *strings.Builder, title, unit string, groups map[string]aggregate.GroupMetrics) {
	if len(groups) == 0 {
		return
	}
	names := sortedKeys(groups)
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	b.WriteString(title + ":\n")
	for _, name := range names {
		g := groups[name]
		b.WriteString(fmt.Sprintf("  %-*s  %s=%d  pass=%.1f%%  avg=%.4f  median=%.4f\n",
			width, name, unit, g.Count, g.PassRate*100, g.AverageScore, g.MedianScore))
	}
	b.WriteString("\n")
}

func writeCustomMetrics(b *strings.Builder, metrics map[string]float64) {
	if len(metrics) == 0 {
		return
	}
	keys := sortedKeys(metrics)
	width := 0
	for _, key := range keys {
		if len(key) > width {
			width = len(key)
		}
	}

	b.WriteString("Custom Metrics:\n")
	for _, key := range keys {
		b.WriteString(fmt.Sprintf("  %-*s  %.4f\n", width, key, metrics[key]))
	}
	b.WriteString("\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
