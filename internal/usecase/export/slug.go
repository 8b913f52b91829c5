package export

import (
	"fmt"
	"strings"
)

// maxSlugLength caps folder names so deeply descriptive titles do not
// produce unwieldy paths inside the archive.
const maxSlugLength = 60

var slugAccents = strings.NewReplacer(
	"ç", "c",
	"ã", "a", "á", "a", "à", "a", "â", "a",
	"é", "e", "ê", "e", "è", "e",
	"í", "i", "î", "i", "ì", "i",
	"ó", "o", "ô", "o", "õ", "o", "ò", "o",
	"ú", "u", "û", "u", "ù", "u",
)

// slugify turns a product title into a filesystem-safe lowercase slug:
// accents folded, anything outside [a-z0-9] collapsed into single hyphens,
// length capped.
func slugify(title string) string {
	s := slugAccents.Replace(strings.ToLower(title))

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// folderName builds the per-product archive folder: slugified title with an
// index suffix keeping folders unique even for identical titles.
func folderName(title string, index int) string {
	slug := slugify(title)
	if slug == "" {
		slug = "produto"
	}
	return fmt.Sprintf("%s_%03d", slug, index)
}
