//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Command trpc-eval scores AI-system outputs against expectations and
// renders evaluation reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-eval-go/log"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "trpc-eval",
	Short: "Score AI-system outputs and render evaluation reports",
	Long: "trpc-eval applies deterministic scorers (structural diff, classification\n" +
		"metrics, retrieval recall) to AI-system outputs and renders aggregated\n" +
		"evaluation reports in text, JSON, CSV, Markdown, HTML or PDF.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(rootFlags.logLevel)
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", log.LevelInfo,
		"Log level: debug, info, warn, error or fatal")
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(scorersCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
