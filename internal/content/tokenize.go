package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// stopWords holds Portuguese function words plus generic fashion descriptors
// (size, gender, fabric markers) that would produce useless hashtags if they
// leaked into the keyword-derived set.
var stopWords = buildStopWords(`a o os as de da do das dos e em no na nos nas para por com sem um uma umas uns
manga tecido cor tamanho feminino feminina masculino masculina infantil plus size moda look`)

func buildStopWords(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// nonTokenChars matches everything that is not part of a candidate keyword:
// ASCII alphanumerics, the Portuguese accented vowels and ç, whitespace and
// hyphens survive, the rest becomes a separator.
var nonTokenChars = regexp.MustCompile(`[^a-z0-9áàâãéèêíìîóòôõúùûç\s-]`)

// Tokenize splits free text into an ordered sequence of lowercase candidate
// keywords. Tokens of length <= 2 and stop words are dropped. Duplicates are
// kept; callers compose UniqueKeepOrder explicitly when they need dedup.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonTokenChars.ReplaceAllString(lowered, " ")

	var tokens []string
	for _, part := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(part) <= 2 {
			continue
		}
		if _, stop := stopWords[part]; stop {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}
