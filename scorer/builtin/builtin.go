//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package builtin wires the built-in scorers into a registry.
package builtin

import (
	"trpc.group/trpc-go/trpc-eval-go/scorer"
	"trpc.group/trpc-go/trpc-eval-go/scorer/classification"
	"trpc.group/trpc-go/trpc-eval-go/scorer/retrieval"
	"trpc.group/trpc-go/trpc-eval-go/scorer/structural"
)

// NewRegistry returns a registry with every built-in scorer factory
// registered: exact_match, classification_metrics, recall_at_k and
// recall_at_k_multi.
func NewRegistry() *scorer.Registry {
	r := scorer.NewRegistry()
	mustRegister(r, structural.Name, structural.NewFromConfig)
	mustRegister(r, classification.Name, classification.NewFromConfig)
	mustRegister(r, retrieval.Name, retrieval.NewFromConfig)
	mustRegister(r, retrieval.MultiName, retrieval.NewMultiFromConfig)
	return r
}

func mustRegister(r *scorer.Registry, name string, factory scorer.Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}
