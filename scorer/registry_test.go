//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package scorer

import (
	"context"
	"testing"
)

// mockScorer implements the Scorer interface for testing.
type mockScorer struct {
	name string
}

func (m *mockScorer) Name() string { return m.name }

func (m *mockScorer) Score(ctx context.Context, output, expected any, sc *Context) *Result {
	return &Result{Score: 1, Passed: true}
}

func TestRegistryBasicOperations(t *testing.T) {
	reg := NewRegistry()

	factory := func(config map[string]any) (Scorer, error) {
		return &mockScorer{name: "test-scorer"}, nil
	}

	// Test registering a factory.
	if err := reg.Register("test-scorer", factory); err != nil {
		t.Fatalf("Failed to register scorer: %v", err)
	}

	// Test building the scorer.
	s, err := reg.New("test-scorer", nil)
	if err != nil {
		t.Fatalf("Failed to build scorer: %v", err)
	}
	if s.Name() != "test-scorer" {
		t.Errorf("Expected scorer name 'test-scorer', got '%s'", s.Name())
	}

	// Test listing scorers.
	names := reg.List()
	if len(names) != 1 || names[0] != "test-scorer" {
		t.Errorf("Expected list to contain only 'test-scorer', got %v", names)
	}

	// Test error on duplicate registration.
	if err := reg.Register("test-scorer", factory); err == nil {
		t.Error("Expected error when registering duplicate scorer, got nil")
	}

	// Test error on empty name.
	if err := reg.Register("", factory); err == nil {
		t.Error("Expected error when registering empty name, got nil")
	}

	// Test error on nil factory.
	if err := reg.Register("nil-factory", nil); err == nil {
		t.Error("Expected error when registering nil factory, got nil")
	}

	// Test error when building a non-existent scorer.
	if _, err := reg.New("non-existent", nil); err == nil {
		t.Error("Expected error when building non-existent scorer, got nil")
	}
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()

	factory := func(config map[string]any) (Scorer, error) {
		return &mockScorer{name: "s"}, nil
	}
	for _, name := range []string{"zebra", "alpha", "mango"} {
		if err := reg.Register(name, factory); err != nil {
			t.Fatalf("Failed to register %q: %v", name, err)
		}
	}

	names := reg.List()
	want := []string{"alpha", "mango", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Expected names[%d]=%q, got %q", i, name, names[i])
		}
	}
}

func TestRegistryReset(t *testing.T) {
	reg := NewRegistry()

	factory := func(config map[string]any) (Scorer, error) {
		return &mockScorer{name: "s"}, nil
	}
	if err := reg.Register("s", factory); err != nil {
		t.Fatalf("Failed to register scorer: %v", err)
	}

	reg.Reset()

	if names := reg.List(); len(names) != 0 {
		t.Errorf("Expected empty registry after reset, got %v", names)
	}
}

func TestRegistryFactoryReceivesConfig(t *testing.T) {
	reg := NewRegistry()

	var got map[string]any
	factory := func(config map[string]any) (Scorer, error) {
		got = config
		return &mockScorer{name: "cfg"}, nil
	}
	if err := reg.Register("cfg", factory); err != nil {
		t.Fatalf("Failed to register scorer: %v", err)
	}

	cfg := map[string]any{"threshold": 0.75}
	if _, err := reg.New("cfg", cfg); err != nil {
		t.Fatalf("Failed to build scorer: %v", err)
	}
	if got == nil || got["threshold"] != 0.75 {
		t.Errorf("Expected factory to receive config %v, got %v", cfg, got)
	}
}
