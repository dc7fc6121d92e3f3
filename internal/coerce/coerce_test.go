//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package coerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndirect(t *testing.T) {
	n := 42
	p := &n
	assert.Equal(t, 42, Indirect(p))

	var nilInt *int
	assert.Nil(t, Indirect(nilInt))
	assert.Nil(t, Indirect(nil))

	assert.Equal(t, "plain", Indirect("plain"))
}

func TestSlice(t *testing.T) {
	got, ok := Slice([]any{1, "a"})
	assert.True(t, ok)
	assert.Equal(t, []any{1, "a"}, got)

	got, ok = Slice([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, got)

	var nilSlice []int
	got, ok = Slice(nilSlice)
	assert.True(t, ok)
	assert.Empty(t, got)

	_, ok = Slice("not a slice")
	assert.False(t, ok)
	_, ok = Slice(map[string]any{})
	assert.False(t, ok)
	_, ok = Slice(nil)
	assert.False(t, ok)
}

func TestMap(t *testing.T) {
	got, ok := Map(map[string]any{"k": 1})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"k": 1}, got)

	got, ok = Map(map[string]int{"n": 2})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"n": 2}, got)

	got, ok = Map(map[int]string{3: "three"})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"3": "three"}, got)

	_, ok = Map([]any{})
	assert.False(t, ok)
	_, ok = Map(nil)
	assert.False(t, ok)
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{3, 3, true},
		{int64(-2), -2, true},
		{uint8(7), 7, true},
		{2.5, 2.5, true},
		{float32(1.5), 1.5, true},
		{json.Number("0.25"), 0.25, true},
		{json.Number("bogus"), 0, false},
		{"5", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := Float(tt.in)
		assert.Equal(t, tt.ok, ok, "Float(%v) ok", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "Float(%v)", tt.in)
		}
	}
}
