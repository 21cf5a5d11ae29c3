// Package shared provides common utility functions used across multiple
// packages in the arxml-viewer codebase.
package shared

import "strings"

// NormalizeRef trims surrounding whitespace and the leading slash from
// an ARXML reference path, so "/Pkg/Comp" and "Pkg/Comp" address the
// same element.
func NormalizeRef(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), "/")
}

// RefTail returns the last segment of an ARXML reference path: the
// short name of the element the reference points at. An empty
// reference yields an empty string.
func RefTail(ref string) string {
	normalized := NormalizeRef(ref)
	if normalized == "" {
		return ""
	}
	if idx := strings.LastIndexByte(normalized, '/'); idx >= 0 {
		return normalized[idx+1:]
	}
	return normalized
}

// RefParent returns the reference path with its last segment removed,
// or an empty string when the reference has a single segment.
func RefParent(ref string) string {
	normalized := NormalizeRef(ref)
	if idx := strings.LastIndexByte(normalized, '/'); idx >= 0 {
		return normalized[:idx]
	}
	return ""
}
