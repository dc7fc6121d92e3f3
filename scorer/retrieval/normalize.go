//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package retrieval

import (
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/internal/coerce"
)

const (
	fieldRetrieved = "retrieved"
	fieldRelevant  = "relevant"
)

// idFields are the document ID keys, tried in order.
var idFields = []string{"id", "docId", "documentId"}

// containerFields are the array fields a result container may expose,
// tried in order.
var containerFields = []string{"documents", "ids", "results"}

// extractLists resolves the accepted input shapes into retrieved and
// relevant element slices. Shapes are recognized in order: an object
// carrying "retrieved" and "relevant" arrays, two parallel arrays, then
// a pair of container objects exposing documents, ids or results.
func extractLists(output, expected any) (retrieved, relevant []any, err error) {
	output, expected = coerce.Indirect(output), coerce.Indirect(expected)

	outObj, outIsObj := coerce.Map(output)
	if outIsObj {
		retVal, hasRet := outObj[fieldRetrieved]
		relVal, hasRel := outObj[fieldRelevant]
		if hasRet || hasRel {
			if !hasRet || !hasRel {
				return nil, nil, fmt.Errorf("object input must carry both %q and %q", fieldRetrieved, fieldRelevant)
			}
			ret, ok := coerce.Slice(retVal)
			if !ok {
				return nil, nil, fmt.Errorf("%q must be an array", fieldRetrieved)
			}
			rel, ok := coerce.Slice(relVal)
			if !ok {
				return nil, nil, fmt.Errorf("%q must be an array", fieldRelevant)
			}
			return ret, rel, nil
		}
	}

	if ret, ok := coerce.Slice(output); ok {
		if rel, ok := coerce.Slice(expected); ok {
			return ret, rel, nil
		}
	}

	if outIsObj {
		expObj, ok := coerce.Map(expected)
		if !ok {
			return nil, nil, fmt.Errorf("unsupported retrieval input shape")
		}
		ret, err := containerList(outObj)
		if err != nil {
			return nil, nil, fmt.Errorf("retrieved side: %w", err)
		}
		rel, err := containerList(expObj)
		if err != nil {
			return nil, nil, fmt.Errorf("relevant side: %w", err)
		}
		return ret, rel, nil
	}

	return nil, nil, fmt.Errorf("unsupported retrieval input shape")
}

func containerList(obj map[string]any) ([]any, error) {
	for _, field := range containerFields {
		v, ok := obj[field]
		if !ok {
			continue
		}
		arr, ok := coerce.Slice(v)
		if !ok {
			return nil, fmt.Errorf("%q must be an array", field)
		}
		return arr, nil
	}
	return nil, fmt.Errorf("object exposes none of documents, ids or results")
}

// documentID derives the identity of one element. Objects try the ID
// fields in order and fall back to their JSON form; primitives
// stringify directly.
func documentID(v any) string {
	v = coerce.Indirect(v)
	if obj, ok := coerce.Map(v); ok {
		for _, field := range idFields {
			if idVal, ok := obj[field]; ok {
				return stringify(idVal)
			}
		}
		if b, err := json.Marshal(obj); err == nil {
			return string(b)
		}
		return fmt.Sprint(obj)
	}
	return stringify(v)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// documentIDs converts raw elements to IDs, keeping order and
// duplicates.
func documentIDs(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = documentID(v)
	}
	return out
}

// uniqueIDs converts raw elements to IDs, dropping duplicates while
// keeping first-seen order, and returns the membership set alongside.
func uniqueIDs(values []any) ([]string, map[string]struct{}) {
	order := make([]string, 0, len(values))
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		id := documentID(v)
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		order = append(order, id)
	}
	return order, set
}
