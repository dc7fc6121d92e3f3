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

	"github.com/mitchellh/mapstructure"
)

// DecodeConfig decodes a loosely typed configuration map into the options
// struct pointed to by target. Keys match the target's mapstructure tags,
// unknown keys are ignored, and values are converted weakly so JSON and
// YAML sources can mix numeric and string representations. target keeps
// its preset defaults for keys the map does not mention.
func DecodeConfig(config map[string]any, target any) error {
	if len(config) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("build config decoder: %w", err)
	}
	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("decode scorer config: %w", err)
	}
	return nil
}
