package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// NormalizeCategory converts a category to lowercase, falling back to the given default
func NormalizeCategory(category, fallback string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return fallback
	}
	return category
}

// FormatNameForDisplay capitalizes the first letter of a name
func FormatNameForDisplay(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespaceRun.ReplaceAllString(cleaned, "_")

	return cleaned
}
