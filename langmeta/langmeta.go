// Package langmeta provides a shared registry of display names for the
// two-letter language codes used by game localization file sets.
package langmeta

import "strings"

// Registry maps language codes to English display names. The code set
// includes the game-specific variants (br, cz, ea, fc, kr, jp, ct, tw) that
// differ from ISO 639-1.
var Registry = map[string]string{
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
	"pl": "Polish",
	"ru": "Russian",
	"br": "Portuguese (BR)",
	"pt": "Portuguese (PT)",
	"cz": "Czech",
	"cs": "Czech (deprecated)",
	"uk": "Ukrainian",
	"nl": "Dutch",
	"da": "Danish",
	"sv": "Swedish",
	"no": "Norwegian",
	"fi": "Finnish",
	"hu": "Hungarian",
	"ro": "Romanian",
	"tr": "Turkish",
	"ja": "Japanese",
	"jp": "Japanese",
	"ko": "Korean",
	"kr": "Korean",
	"zh": "Chinese (Simplified)",
	"tw": "Chinese (Traditional)",
	"ct": "Chinese (Traditional)",
	"ea": "Spanish (Latin America)",
	"fc": "French (Canadian)",
	"id": "Indonesian",
	"vi": "Vietnamese",
}

// Resolve returns the display name for a language code, falling back to the
// upper-cased code for unknown languages.
func Resolve(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if name, ok := Registry[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
