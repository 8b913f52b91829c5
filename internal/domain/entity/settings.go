package entity

// Settings holds the single active content-generation configuration.
// It is loaded once per request by the settings use case and handed read-only
// to the caption builder; generation code never mutates it.
type Settings struct {
	ID                  int64
	FixedHashtags       string
	MaxHashtags         int
	CTA                 string
	AffiliateDisclaimer string
	Language            string
	DefaultPrefix       string
	DefaultSuffix       string
}

// DefaultSettings returns the configuration used until the operator saves
// their own. The values mirror the studio's launch defaults.
func DefaultSettings() *Settings {
	return &Settings{
		FixedHashtags:       "#shopee #shopeeafiliados",
		MaxHashtags:         18,
		CTA:                 "Confira no link 👇",
		AffiliateDisclaimer: "(Link de afiliado — posso receber comissão sem custo extra.)",
		Language:            "pt-br",
		DefaultPrefix:       "Achado do dia ✨",
		DefaultSuffix:       "",
	}
}

// Validate checks the settings fields that must hold before persisting.
func (s *Settings) Validate() error {
	if s.MaxHashtags < 0 {
		return &ValidationError{Field: "max_hashtags", Message: "must not be negative"}
	}
	return nil
}
