package provider

import (
	"strings"
	"unicode"
)

// docText recovers the documentation text from a /** ... */ block: the
// lines before the first annotation-tag line, joined with single spaces,
// with internal whitespace collapsed. Returns "" for an empty or absent
// block.
func docText(raw string) string {
	if raw == "" {
		return ""
	}

	body := strings.TrimPrefix(raw, "/**")
	body = strings.TrimSuffix(body, "*/")

	var parts []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "@") {
			break
		}
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// titleFromName splits a camel-case member name into capitalized words.
// Acronym runs stay together: "fetchOHLCV" becomes "Fetch OHLCV".
func titleFromName(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	var words []string
	start := 0

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case !unicode.IsUpper(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// End of an acronym run: the last upper starts the next word.
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))

	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
