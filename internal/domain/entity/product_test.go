package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_ImageURLList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty field",
			raw:  "",
			want: nil,
		},
		{
			name: "single URL",
			raw:  "https://cdn.example.com/a.jpg",
			want: []string{"https://cdn.example.com/a.jpg"},
		},
		{
			name: "multiple URLs keep order",
			raw:  "https://cdn.example.com/a.jpg\nhttps://cdn.example.com/b.jpg",
			want: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		},
		{
			name: "blank lines and whitespace dropped",
			raw:  "  https://cdn.example.com/a.jpg  \n\n\nhttps://cdn.example.com/b.jpg\n",
			want: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, (&Product{ImageURLs: tt.raw}).ImageURLList())
		})
	}
}

func TestProduct_Generated(t *testing.T) {
	assert.False(t, (&Product{}).Generated())
	assert.False(t, (&Product{Caption: "oi"}).Generated())
	assert.True(t, (&Product{Caption: "oi", Hashtags: "#oi"}).Generated())
}

func TestProduct_Validate(t *testing.T) {
	if err := (&Product{Title: "  "}).Validate(); err == nil {
		t.Fatal("want error for blank title")
	}
	if err := (&Product{Title: "Vestido", AffiliateLink: "not-a-url"}).Validate(); err == nil {
		t.Fatal("want error for bad affiliate link")
	}
	if err := (&Product{Title: "Vestido", AffiliateLink: "https://s.shopee.com.br/x"}).Validate(); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
}

func TestSettings_Defaults(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "#shopee #shopeeafiliados", s.FixedHashtags)
	assert.Equal(t, 18, s.MaxHashtags)
	assert.NotEmpty(t, s.CTA)
	assert.NotEmpty(t, s.AffiliateDisclaimer)
	assert.NotEmpty(t, s.DefaultPrefix)
}

func TestSettings_Validate(t *testing.T) {
	if err := (&Settings{MaxHashtags: -1}).Validate(); err == nil {
		t.Fatal("want error for negative max_hashtags")
	}
	if err := (&Settings{MaxHashtags: 0}).Validate(); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
}

func TestVideo_Validate(t *testing.T) {
	if err := (&Video{}).Validate(); err == nil {
		t.Fatal("want error for missing URL")
	}
	if err := (&Video{ShopeeURL: "https://shopee.com.br/video/1"}).Validate(); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
}
