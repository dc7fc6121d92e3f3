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
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
)

// csvHeader is the fixed column set consumers rely on.
var csvHeader = []string{"test_id", "category", "passed", "scorer", "score", "reason"}

// CSV renders the raw per-case results as RFC-4180 CSV, one row per
// scorer invocation per case. The passed column carries the case-level
// verdict; scorer, score and reason describe the individual invocation.
// Runs with a nil result are skipped.
func CSV(results []aggregate.TestCaseResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		for _, run := range r.ScorerResults {
			if run.Result == nil {
				continue
			}
			record := []string{
				r.ID,
				r.Category,
				strconv.FormatBool(r.Passed),
				run.ScorerName,
				fmt.Sprintf("%.4f", run.Result.Score),
				run.Result.Reason,
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("write csv record for case %q: %w", r.ID, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}
