package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// seedRegex matches the seed format: 0x followed by exactly ten hex digits.
var seedRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{10}$`)

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// MinShapeCount and MaxShapeCount bound the user-selectable shape count.
const (
	MinShapeCount = 1
	MaxShapeCount = 9
)

// ValidateSeed checks that s is a 40-bit hex seed such as "0x822b8fec20".
func ValidateSeed(s string) error {
	if s == "" {
		return New(ErrCodeInvalidSeed, "seed cannot be empty")
	}
	if !seedRegex.MatchString(s) {
		return New(ErrCodeInvalidSeed, "invalid seed %q (want 0x followed by 10 hex digits)", s)
	}
	return nil
}

// ValidateShapeCount checks that n is within [MinShapeCount, MaxShapeCount].
func ValidateShapeCount(n int) error {
	if n < MinShapeCount || n > MaxShapeCount {
		return New(ErrCodeInvalidInput, "shape count %d out of range (%d-%d)", n, MinShapeCount, MaxShapeCount)
	}
	return nil
}

// ValidateHexColor checks that s is a #rgb or #rrggbb color.
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidTheme, "invalid color %q (want #rrggbb)", s)
	}
	return nil
}

// ValidateOutputDir validates a directory path used for exports.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..) after cleaning
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
