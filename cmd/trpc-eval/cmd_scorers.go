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
	"fmt"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-eval-go/scorer/builtin"
)

var scorersCmd = &cobra.Command{
	Use:   "scorers",
	Short: "List the registered scorers",
	RunE:  runScorers,
}

func runScorers(cmd *cobra.Command, args []string) error {
	for _, name := range builtin.NewRegistry().List() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
