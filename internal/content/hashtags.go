package content

import (
	"regexp"
	"strings"
	"unicode"
)

// maxKeywordTags caps how many keyword-derived tags are taken from the title.
const maxKeywordTags = 12

// fixedTagPattern extracts hashtag tokens from the operator-configured fixed
// hashtag string. \p{L}\p{N} keeps accented letters the way the rest of the
// pipeline expects them.
var fixedTagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

// DeriveHashtags combines fixed tags, category tags, keyword table matches
// and title-derived keyword tags into one capped, deduplicated, space-joined
// hashtag string.
//
// Append order decides which tags survive the cap: fixed and category tags
// are inserted first and can never be displaced by later duplicates, while
// keyword-derived tags are exploratory and the first to be cut. maxCount <= 0
// disables capping.
func DeriveHashtags(title, category, fixed string, maxCount int) string {
	var tags []string

	for _, t := range fixedTagPattern.FindAllString(fixed, -1) {
		tags = append(tags, strings.ToLower(t))
	}

	loweredTitle := strings.ToLower(title)

	if cat, ok := categoryTags[strings.TrimSpace(strings.ToLower(category))]; ok {
		for _, t := range cat {
			tags = append(tags, strings.ToLower(t))
		}
	}

	for _, rule := range materialTags {
		if strings.Contains(loweredTitle, rule.keyword) {
			tags = append(tags, rule.tag)
		}
	}
	for _, rule := range itemTags {
		if containsWord(loweredTitle, rule.keyword) {
			tags = append(tags, rule.tag)
		}
	}
	for _, rule := range colorTags {
		if strings.Contains(loweredTitle, rule.keyword) {
			tags = append(tags, rule.tag)
		}
	}

	keywords := UniqueKeepOrder(Tokenize(title))
	if len(keywords) > maxKeywordTags {
		keywords = keywords[:maxKeywordTags]
	}
	for _, kw := range keywords {
		if t := NormalizeTag(kw); t != "" {
			tags = append(tags, t)
		}
	}

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	out = UniqueKeepOrder(out)

	if maxCount > 0 && len(out) > maxCount {
		out = out[:maxCount]
	}
	return strings.Join(out, " ")
}

// containsWord reports whether word occurs in text delimited by
// non-alphanumeric runes. strings.Contains would also fire inside longer
// words ("sol" in "óculos"), which is wrong for the item-type table.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	runes := []rune(text)
	target := []rune(word)
	for i := 0; i+len(target) <= len(runes); i++ {
		if string(runes[i:i+len(target)]) != word {
			continue
		}
		if i > 0 && isWordRune(runes[i-1]) {
			continue
		}
		if end := i + len(target); end < len(runes) && isWordRune(runes[end]) {
			continue
		}
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
