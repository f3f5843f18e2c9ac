package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds neighborhood names accepted from clients.
const maxNameLength = 256

// ValidateName checks a neighborhood name received from a client (CLI
// argument or URL path) before it is used as a lookup key. Feed data is not
// passed through here; the graph accepts any key.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "neighborhood name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "neighborhood name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "neighborhood name contains control characters")
		}
	}
	return nil
}

// ValidateDepth checks an expansion depth. The graph tolerates any value, but
// clients asking for zero or absurd depths almost always made a typo.
func ValidateDepth(depth, max int) error {
	if depth < 1 {
		return New(ErrCodeInvalidInput, "depth must be at least 1, got %d", depth)
	}
	if max > 0 && depth > max {
		return New(ErrCodeInvalidInput, "depth must be at most %d, got %d", max, depth)
	}
	return nil
}

// feedExtensions lists the file types the loader can read.
var feedExtensions = map[string]bool{".csv": true, ".xlsx": true, ".json": true, ".yaml": true, ".yml": true}

// ValidateFeedPath checks that path is non-empty and has a supported feed
// extension.
func ValidateFeedPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "feed path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "feed path contains a null byte")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !feedExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported feed type %q (must be .csv, .xlsx, .json, .yaml or .yml)", ext)
	}
	return nil
}
