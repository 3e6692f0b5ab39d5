package category

import (
	"strings"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// emojiDarkTints maps well-known category glyphs to a dark-mode tint. Keys
// are stored without the U+FE0F variation selector so both presentation
// forms of a glyph hit the same entry.
var emojiDarkTints = map[string]string{
	"🚗": entity.TintRed,
	"🍽": entity.TintGray,
	"🛍": entity.TintLightPink,
	"🧾": entity.TintWhite,
	"📺": entity.TintCyan,
	"❤": entity.TintPink,
	"⚪": entity.TintSecondary,
}

// darkTintForEmoji returns the inferred dark-mode tint for an emoji, or the
// empty string when the glyph is unknown.
func darkTintForEmoji(emoji string) string {
	key := strings.ReplaceAll(emoji, "\ufe0f", "")
	return emojiDarkTints[key]
}
