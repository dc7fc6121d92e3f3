//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package structural

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"trpc.group/trpc-go/trpc-eval-go/internal/coerce"
	"trpc.group/trpc-go/trpc-eval-go/scorer"
)

// compare walks actual and expected at path and appends every divergence
// to diffs. Ignored paths contribute nothing and are not descended into.
func (s *Scorer) compare(path string, actual, expected any, diffs *[]scorer.Difference) {
	if s.ignored.matches(path) {
		return
	}

	actual, expected = coerce.Indirect(actual), coerce.Indirect(expected)

	aNull, eNull := actual == nil, expected == nil
	switch {
	case aNull && eNull:
		return
	case aNull || eNull:
		*diffs = append(*diffs, scorer.Difference{
			Path: path, Expected: expected, Actual: actual, Kind: scorer.DiffDifferent,
		})
		return
	}

	actualArr, aIsArr := coerce.Slice(actual)
	expectedArr, eIsArr := coerce.Slice(expected)
	actualObj, aIsObj := coerce.Map(actual)
	expectedObj, eIsObj := coerce.Map(expected)

	switch {
	case (!aIsArr && !aIsObj) || (!eIsArr && !eIsObj):
		// A leaf on either side compares directly, whatever the other
		// side is.
		if !s.leafEqual(actual, expected) {
			*diffs = append(*diffs, scorer.Difference{
				Path: path, Expected: expected, Actual: actual, Kind: scorer.DiffDifferent,
			})
		}
	case aIsArr && eIsArr:
		s.compareArrays(path, actualArr, expectedArr, diffs)
	case aIsArr != eIsArr:
		// Array on one side, object on the other. No recursion.
		*diffs = append(*diffs, scorer.Difference{
			Path: path, Expected: expected, Actual: actual, Kind: scorer.DiffTypeMismatch,
		})
	default:
		s.compareObjects(path, actualObj, expectedObj, diffs)
	}
}

func (s *Scorer) compareArrays(path string, actual, expected []any, diffs *[]scorer.Difference) {
	if len(actual) != len(expected) {
		lengthPath := path + ".length"
		if !s.ignored.matches(lengthPath) {
			*diffs = append(*diffs, scorer.Difference{
				Path: lengthPath, Expected: len(expected), Actual: len(actual), Kind: scorer.DiffDifferent,
			})
		}
	}

	n := len(actual)
	if len(expected) > n {
		n = len(expected)
	}
	for i := 0; i < n; i++ {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case i >= len(actual):
			if !s.ignored.matches(elemPath) {
				*diffs = append(*diffs, scorer.Difference{
					Path: elemPath, Expected: expected[i], Kind: scorer.DiffMissing,
				})
			}
		case i >= len(expected):
			if !s.ignored.matches(elemPath) {
				*diffs = append(*diffs, scorer.Difference{
					Path: elemPath, Actual: actual[i], Kind: scorer.DiffExtra,
				})
			}
		default:
			s.compare(elemPath, actual[i], expected[i], diffs)
		}
	}
}

func (s *Scorer) compareObjects(path string, actual, expected map[string]any, diffs *[]scorer.Difference) {
	keys := make([]string, 0, len(actual)+len(expected))
	seen := make(map[string]struct{}, len(actual)+len(expected))
	for k := range actual {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range expected {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	if s.opts.ignoreKeyOrder {
		sort.Strings(keys)
	}

	for _, k := range keys {
		childPath := path + "." + k
		actualVal, inActual := actual[k]
		expectedVal, inExpected := expected[k]
		switch {
		case !inActual:
			if !s.ignored.matches(childPath) {
				*diffs = append(*diffs, scorer.Difference{
					Path: childPath, Expected: expectedVal, Kind: scorer.DiffMissing,
				})
			}
		case !inExpected:
			if !s.ignored.matches(childPath) {
				*diffs = append(*diffs, scorer.Difference{
					Path: childPath, Actual: actualVal, Kind: scorer.DiffExtra,
				})
			}
		default:
			s.compare(childPath, actualVal, expectedVal, diffs)
		}
	}
}

// leafEqual compares two non-container values. Numbers compare as
// float64 across integer and float kinds, strings after the configured
// transforms; anything else falls back to deep equality.
func (s *Scorer) leafEqual(actual, expected any) bool {
	if af, ok := coerce.Float(actual); ok {
		ef, ok := coerce.Float(expected)
		return ok && af == ef
	}
	if as, ok := actual.(string); ok {
		es, ok := expected.(string)
		return ok && s.normalizeString(as) == s.normalizeString(es)
	}
	return reflect.DeepEqual(actual, expected)
}

// normalizeString applies the configured transforms: whitespace trim
// first, then Unicode case folding. A fresh Caser per call keeps the
// scorer safe for concurrent use.
func (s *Scorer) normalizeString(v string) string {
	if s.opts.trimWhitespace {
		v = strings.TrimSpace(v)
	}
	if s.opts.caseInsensitive {
		v = cases.Fold().String(v)
	}
	return v
}
