// Package content implements the caption and hashtag generation engine.
// It turns free-text product attributes into a ranked, deduplicated, capped
// hashtag list and an assembled multi-line caption. All functions are pure:
// given the same input they produce byte-identical output, and malformed
// input degrades to a shorter result instead of an error.
package content

import "strings"

// accentFold maps the accented Latin letters that show up in Portuguese
// product titles to their unaccented equivalents. Anything not covered here
// is stripped by the alphanumeric filter below.
var accentFold = strings.NewReplacer(
	"ç", "c",
	"ã", "a", "á", "a", "à", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
)

// NormalizeTag converts a single word into a canonical hashtag: lowercase,
// accents folded, every character outside [a-z0-9] stripped, "#" prefixed.
// Returns the empty string when nothing survives; the caller must drop it.
func NormalizeTag(word string) string {
	w := accentFold.Replace(strings.ToLower(word))

	var b strings.Builder
	for _, r := range w {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// UniqueKeepOrder removes duplicates from a slice keeping the first
// occurrence of each value. Shared by the tokenizer consumers and the tag
// deriver, which both rely on first-seen ordering.
func UniqueKeepOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
