//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/report"
)

var reportFlags struct {
	input      string
	format     string
	out        string
	confidence float64
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate per-case results and render a report",
	Long: "Report loads per-case scoring results from a JSON file, aggregates them\n" +
		"into run-level metrics and renders the report in the requested format.",
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.input, "input", "", "Path to the JSON file holding the per-case results (required)")
	reportCmd.Flags().StringVar(&reportFlags.format, "format", string(report.FormatText), "Report format: text, json, csv, markdown, html or pdf")
	reportCmd.Flags().StringVar(&reportFlags.out, "out", "", "Write the report to this file instead of stdout")
	reportCmd.Flags().Float64Var(&reportFlags.confidence, "confidence", 0.95, "Confidence level for the score interval")
	_ = reportCmd.MarkFlagRequired("input")
}

func runReport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(reportFlags.input)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}
	var results []aggregate.TestCaseResult
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("parse results: %w", err)
	}
	metrics := aggregate.Calculate(results, aggregate.WithConfidenceLevel(reportFlags.confidence))
	rendered, err := report.Render(report.Format(reportFlags.format), metrics, results)
	if err != nil {
		return err
	}
	if reportFlags.out == "" {
		_, err = cmd.OutOrStdout().Write(rendered)
		return err
	}
	if err := os.WriteFile(reportFlags.out, rendered, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Infof("Wrote %s report for %d case(s) to %s", reportFlags.format, len(results), reportFlags.out)
	return nil
}
