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

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-eval-go/scorer/builtin"
	"trpc.group/trpc-go/trpc-eval-go/scorer/structural"
)

var scoreFlags struct {
	output   string
	expected string
	scorer   string
	config   string
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single output against an expectation",
	Long: "Score loads an output value and an expected value from JSON files,\n" +
		"applies the selected scorer and prints the result as indented JSON.",
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFlags.output, "output", "", "Path to the JSON file holding the system output (required)")
	scoreCmd.Flags().StringVar(&scoreFlags.expected, "expected", "", "Path to the JSON file holding the expected value (required)")
	scoreCmd.Flags().StringVar(&scoreFlags.scorer, "scorer", structural.Name, "Scorer to apply, see the scorers command for the list")
	scoreCmd.Flags().StringVar(&scoreFlags.config, "config", "", "Optional YAML file with scorer configuration")
	_ = scoreCmd.MarkFlagRequired("output")
	_ = scoreCmd.MarkFlagRequired("expected")
}

func runScore(cmd *cobra.Command, args []string) error {
	output, err := loadJSONValue(scoreFlags.output)
	if err != nil {
		return fmt.Errorf("load output: %w", err)
	}
	expected, err := loadJSONValue(scoreFlags.expected)
	if err != nil {
		return fmt.Errorf("load expected: %w", err)
	}
	config, err := loadScorerConfig(scoreFlags.config)
	if err != nil {
		return fmt.Errorf("load scorer config: %w", err)
	}
	s, err := builtin.NewRegistry().New(scoreFlags.scorer, config)
	if err != nil {
		return err
	}
	result := s.Score(cmd.Context(), output, expected, nil)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
