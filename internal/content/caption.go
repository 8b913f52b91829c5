package content

import (
	"strings"

	"promo-studio/internal/domain/entity"
)

// BuildCaption assembles a publish-ready caption and its companion hashtag
// string for one product. Lines in order: "{prefix} {title}", a 💰 price line,
// the operator notes, the call to action with the affiliate link appended
// when present, the disclaimer and the suffix. Empty lines are dropped, so
// missing fields shorten the caption instead of failing; generation never
// returns an error.
func BuildCaption(settings *entity.Settings, p *entity.Product) (caption, hashtags string) {
	title := strings.TrimSpace(p.Title)
	price := strings.TrimSpace(p.Price)
	link := strings.TrimSpace(p.AffiliateLink)
	prefix := strings.TrimSpace(settings.DefaultPrefix)
	suffix := strings.TrimSpace(settings.DefaultSuffix)
	cta := strings.TrimSpace(settings.CTA)
	disclaimer := strings.TrimSpace(settings.AffiliateDisclaimer)

	lines := []string{strings.TrimSpace(prefix + " " + title)}
	if price != "" {
		lines = append(lines, "💰 "+price)
	}
	if p.Notes != "" {
		lines = append(lines, strings.TrimSpace(p.Notes))
	}
	if link != "" {
		lines = append(lines, strings.TrimSpace(cta+" "+link))
	} else {
		lines = append(lines, cta)
	}
	if disclaimer != "" {
		lines = append(lines, disclaimer)
	}
	if suffix != "" {
		lines = append(lines, suffix)
	}

	nonEmpty := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}

	caption = strings.Join(nonEmpty, "\n")
	hashtags = DeriveHashtags(title, p.Category, settings.FixedHashtags, settings.MaxHashtags)
	return caption, hashtags
}
