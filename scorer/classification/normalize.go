//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package classification

import (
	"fmt"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/internal/coerce"
)

const (
	fieldPredictions = "predictions"
	fieldLabels      = "labels"
)

// extractPairs resolves the accepted input shapes into parallel
// prediction and label slices. Shapes are recognized in order: an object
// carrying "predictions" and "labels" arrays, two parallel arrays, then
// a single scalar pair.
func extractPairs(output, expected any) (predictions, labels []any, err error) {
	output, expected = coerce.Indirect(output), coerce.Indirect(expected)

	if obj, ok := coerce.Map(output); ok {
		predsVal, hasPreds := obj[fieldPredictions]
		labelsVal, hasLabels := obj[fieldLabels]
		if hasPreds || hasLabels {
			if !hasPreds || !hasLabels {
				return nil, nil, fmt.Errorf("object input must carry both %q and %q", fieldPredictions, fieldLabels)
			}
			preds, ok := coerce.Slice(predsVal)
			if !ok {
				return nil, nil, fmt.Errorf("%q must be an array", fieldPredictions)
			}
			labs, ok := coerce.Slice(labelsVal)
			if !ok {
				return nil, nil, fmt.Errorf("%q must be an array", fieldLabels)
			}
			return preds, labs, nil
		}
	}

	if preds, ok := coerce.Slice(output); ok {
		if labs, ok := coerce.Slice(expected); ok {
			return preds, labs, nil
		}
	}

	return []any{output}, []any{expected}, nil
}

// truthy and falsy are the recognized string spellings of the two
// classes, matched after lowercasing and trimming.
var (
	truthy = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "positive": {}}
	falsy  = map[string]struct{}{"false": {}, "0": {}, "no": {}, "negative": {}}
)

// normalizeValue maps one raw value to a binary class. Numbers binarize
// against threshold, booleans map directly, strings match the recognized
// spellings and otherwise parse as a float.
func normalizeValue(v any, threshold float64) (int, error) {
	v = coerce.Indirect(v)

	if b, ok := v.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	if f, ok := coerce.Float(v); ok {
		return binarize(f, threshold), nil
	}
	if s, ok := v.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if _, ok := truthy[s]; ok {
			return 1, nil
		}
		if _, ok := falsy[s]; ok {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot interpret %q as a label", s)
		}
		return binarize(f, threshold), nil
	}
	return 0, fmt.Errorf("cannot interpret value of type %T as a label", v)
}

// normalizeAll maps every raw value, reporting the offending index on
// failure.
func normalizeAll(values []any, threshold float64) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		n, err := normalizeValue(v, threshold)
		if err != nil {
			return nil, fmt.Errorf("value at index %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

func binarize(f, threshold float64) int {
	if f >= threshold {
		return 1
	}
	return 0
}
