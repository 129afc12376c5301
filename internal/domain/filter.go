package domain

import (
	"path/filepath"
	"strings"
)

// PathFilter restricts a synchronized change set to the configured include
// and exclude rules. An excluded path is always dropped; with no include
// rules everything not explicitly excluded is kept.
//
// The filter is a content-selection pass over reported paths; it does not
// rewrite the pulled tree. Callers that need tree-level restriction can
// layer it on top of Apply.
type PathFilter struct {
	Include []string
	Exclude []string
}

// Empty reports whether the filter has no rules at all.
func (f PathFilter) Empty() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0
}

// Matches reports whether the path survives the filter.
func (f PathFilter) Matches(path string) bool {
	for _, pattern := range f.Exclude {
		if matchRule(pattern, path) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if matchRule(pattern, path) {
			return true
		}
	}
	return false
}

// Apply keeps the matching paths, preserving their order.
func (f PathFilter) Apply(paths []string) []string {
	if f.Empty() {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if f.Matches(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// matchRule accepts a rule as an exact path, a directory prefix, or a glob
// matched against the full path and against every path segment.
func matchRule(pattern, path string) bool {
	if pattern == "" {
		return false
	}
	if pattern == path || strings.HasPrefix(path, pattern+"/") {
		return true
	}
	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	for _, segment := range strings.Split(path, "/") {
		if ok, err := filepath.Match(pattern, segment); err == nil && ok {
			return true
		}
	}
	return false
}
