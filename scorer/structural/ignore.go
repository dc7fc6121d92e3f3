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
	"regexp"
	"strings"
)

// pathMatcher holds the compiled ignore patterns. Patterns compile once
// at scorer construction; compiled regexps are safe for concurrent use.
type pathMatcher struct {
	patterns []*regexp.Regexp
}

// compilePathMatcher translates the ignore patterns into anchored
// regular expressions. "*" becomes ".*" and every other character
// matches literally, so a wildcard may span path separators.
func compilePathMatcher(paths []string) *pathMatcher {
	m := &pathMatcher{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		m.patterns = append(m.patterns, wildcardRegexp(p))
	}
	return m
}

func wildcardRegexp(pattern string) *regexp.Regexp {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")
}

// matches reports whether path matches any ignore pattern.
func (m *pathMatcher) matches(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
