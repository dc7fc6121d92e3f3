//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package report renders aggregated evaluation metrics as text, JSON,
// CSV, Markdown, HTML or PDF. Every formatter is a pure function of
// already-computed values and never mutates its input.
package report

import (
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
)

// Format identifies a report output format.
type Format string

// Supported report formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// Render produces the report in the requested format. Metric-level
// formats render m; the CSV format renders the raw per-case results
// instead. Unknown formats return an error.
func Render(format Format, m *aggregate.AggregatedMetrics, results []aggregate.TestCaseResult) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(Text(m)), nil
	case FormatJSON:
		return JSON(m)
	case FormatCSV:
		s, err := CSV(results)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case FormatMarkdown:
		return []byte(Markdown(m)), nil
	case FormatHTML:
		return HTML(m)
	case FormatPDF:
		return PDF(m)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// JSON serializes the aggregated metrics as indented JSON.
func JSON(m *aggregate.AggregatedMetrics) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal metrics: %w", err)
	}
	return data, nil
}
