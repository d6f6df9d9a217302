// Package insertion substitutes a survey's insertion value into authored
// text. Surveys carry a single named value (typically a company or subject
// name) which may appear any number of times in descriptions, question text,
// and choice values via the %s placeholder.
package insertion

import "strings"

// Placeholder marks an insertion point in authored text.
const Placeholder = "%s"

// Count returns the number of insertion points in text.
func Count(text string) int {
	return strings.Count(text, Placeholder)
}

// Render replaces every insertion point with value. Text with zero
// placeholders, or an empty value, is returned unchanged.
func Render(text, value string) string {
	if value == "" || Count(text) == 0 {
		return text
	}
	return strings.ReplaceAll(text, Placeholder, value)
}
