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
	"fmt"
	"sort"
	"sync"
)

// Factory builds a scorer from a loosely typed configuration map.
// Factories apply their scorer's defaults first, then overlay the map,
// typically through DecodeConfig.
type Factory func(config map[string]any) (Scorer, error)

// Registry maps scorer names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty scorer registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register registers a factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("scorer name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("scorer factory cannot be nil")
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("scorer with name %q already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// New builds a scorer by name from config.
func (r *Registry) New(name string, config map[string]any) (Scorer, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("scorer %q not found", name)
	}

	return factory(config)
}

// List returns the registered scorer names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Reset clears all registered factories.
// Primarily used for testing.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]Factory)
}

// globalRegistry is the default registry for scorers.
var globalRegistry = NewRegistry()

// Register registers a factory with the global registry.
func Register(name string, factory Factory) error {
	return globalRegistry.Register(name, factory)
}

// New builds a scorer by name from the global registry.
func New(name string, config map[string]any) (Scorer, error) {
	return globalRegistry.New(name, config)
}

// List returns the scorer names registered with the global registry.
func List() []string {
	return globalRegistry.List()
}
