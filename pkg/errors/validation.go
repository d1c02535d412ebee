package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxGroupOrder bounds the order of groups accepted by constructors.
// Subgroup enumeration is intentionally exponential-tolerant for small
// orders; anything beyond this is outside the tool's design envelope.
const MaxGroupOrder = 4096

// ValidateOrder validates a requested group order.
// Orders must be positive and within the tool's design envelope.
func ValidateOrder(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidOrder, "group order must be positive, got %d", n)
	}
	if n > MaxGroupOrder {
		return New(ErrCodeInvalidOrder, "group order %d exceeds maximum %d", n, MaxGroupOrder)
	}
	return nil
}

// descriptorRegex matches a single well-formed descriptor term
// (e.g. "c12", "q8", "d4", "klein").
var descriptorRegex = regexp.MustCompile(`^(c[0-9]+|d[0-9]+|q8|klein)$`)

// ValidateDescriptorTerm validates a single group descriptor term.
// Manifest file paths are handled separately by the CLI; this accepts
// only the built-in constructor forms.
func ValidateDescriptorTerm(term string) error {
	if term == "" {
		return New(ErrCodeInvalidDescriptor, "descriptor term cannot be empty")
	}
	if !descriptorRegex.MatchString(term) {
		return New(ErrCodeInvalidDescriptor, "unknown group descriptor: %q (expected c<N>, d<N>, q8 or klein)", term)
	}
	return nil
}

// ValidateElementName validates an element name read from a group manifest.
// Names must be non-empty, reasonably short, and free of control characters
// so they render cleanly in reports and DOT output.
func ValidateElementName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "element name cannot be empty")
	}
	if len(name) > 32 {
		return New(ErrCodeInvalidManifest, "element name too long (max 32 characters): %q", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "element name contains control characters")
		}
	}
	if strings.ContainsAny(name, "\"\\") {
		return New(ErrCodeInvalidManifest, "element name contains invalid characters: %q", name)
	}
	return nil
}

// ValidateManifestPath validates a group manifest path for safety.
// It prevents path traversal and enforces the .toml extension.
func ValidateManifestPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidManifest, "manifest path cannot be empty")
	}
	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidManifest, "manifest path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "manifest path contains invalid characters")
		}
	}
	if !strings.HasSuffix(strings.ToLower(path), ".toml") {
		return New(ErrCodeInvalidManifest, "manifest must be a .toml file: %q", path)
	}
	return nil
}
