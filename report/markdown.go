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
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
)

// Markdown renders the report as GitHub-flavored Markdown with one
// table per section. Empty sections are omitted and map-backed tables
// are sorted by key.
func Markdown(m *aggregate.AggregatedMetrics) string {
	var b strings.Builder
	b.WriteString("# Evaluation Report\n\n")
	writeOverallTable(&b, m)
	writeScoreTable(&b, m)
	writeGroupTable(&b, "Categories", "Category", "Cases", m.ByCategory)
	writeGroupTable(&b, "Scorers", "Scorer", "Runs", m.ByScorer)
	writeCustomTable(&b, m.CustomMetrics)
	return b.String()
}

func writeOverallTable(b *strings.Builder, m *aggregate.AggregatedMetrics) {
	b.WriteString("## Overall\n\n")
	b.WriteString("| Metric | Value |\n| --- | ---: |\n")
	b.WriteString(fmt.Sprintf("| Total Cases | %d |\n", m.TotalCases))
	b.WriteString(fmt.Sprintf("| Passed | %d |\n", m.PassedCases))
	b.WriteString(fmt.Sprintf("| Failed | %d |\n", m.FailedCases))
	b.WriteString(fmt.Sprintf("| Pass Rate | %.1f%% |\n\n", m.PassRate*100))
}

func writeScoreTable(b *strings.Builder, m *aggregate.AggregatedMetrics) {
	b.WriteString("## Scores\n\n")
	b.WriteString("| Statistic | Value |\n| --- | ---: |\n")
	b.WriteString(fmt.Sprintf("| Average | %.4f |\n", m.AverageScore))
	b.WriteString(fmt.Sprintf("| Median | %.4f |\n", m.MedianScore))
	b.WriteString(fmt.Sprintf("| Std Dev | %.4f |\n", m.StdDevScore))
	if ci := m.ConfidenceInterval; ci != nil {
		b.WriteString(fmt.Sprintf("| Confidence Interval | [%.4f, %.4f] |\n", ci.Lower, ci.Upper))
	}
	b.WriteString("\n")
}

func writeGroupTable(b *strings.Builder, title, keyHeader, unitHeader string, groups map[string]aggregate.GroupMetrics) {
	if len(groups) == 0 {
		return
	}
	b.WriteString("## " + title + "\n\n")
	b.WriteString(fmt.Sprintf("| %s | %s | Pass Rate | Average | Median |\n", keyHeader, unitHeader))
	b.WriteString("| --- | ---: | ---: | ---: | ---: |\n")
	for _, name := range sortedKeys(groups) {
		g := groups[name]
		b.WriteString(fmt.Sprintf("| %s | %d | %.1f%% | %.4f | %.4f |\n",
			escapeCell(name), g.Count, g.PassRate*100, g.AverageScore, g.MedianScore))
	}
	b.WriteString("\n")
}

func writeCustomTable(b *strings.Builder, metrics map[string]float64) {
	if len(metrics) == 0 {
		return
	}
	b.WriteString("## Custom Metrics\n\n")
	b.WriteString("| Metric | Value |\n| --- | ---: |\n")
	for _, key := range sortedKeys(metrics) {
		b.WriteString(fmt.Sprintf("| %s | %.4f |\n", escapeCell(key), metrics[key]))
	}
	b.WriteString("\n")
}

// escapeCell keeps literal pipes in names from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
