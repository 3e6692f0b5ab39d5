// Package category contains category registry use cases and display resolution.
package category

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// normalizeName trims surrounding whitespace from a category name.
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// normalizeEmoji trims the emoji and truncates it to exactly one visible
// character (grapheme cluster), so multi-glyph input cannot break row layout.
func normalizeEmoji(emoji string) string {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return ""
	}
	first, _, _, _ := uniseg.FirstGraphemeClusterInString(emoji, -1)
	return first
}

// normalizeColor trims the color and maps an empty result to nil.
func normalizeColor(colorHex *string) *string {
	if colorHex == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*colorHex)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// isValidHexColor validates hex color format (#XXXXXX or #XXX).
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
