package export

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Vestido Azul", "vestido-azul"},
		{"accents folded", "Calça Jeans Émé", "calca-jeans-eme"},
		{"punctuation collapsed", "Tênis -- Casual!! (Novo)", "tenis-casual-novo"},
		{"symbols only", "!!! ???", ""},
		{"long title capped", "camiseta basica de algodao premium com estampa exclusiva edicao limitada", "camiseta-basica-de-algodao-premium-com-estampa-exclusiva-edi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugify(tt.title); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFolderName(t *testing.T) {
	if got := folderName("Vestido Azul", 3); got != "vestido-azul_003" {
		t.Errorf("folderName = %q, want %q", got, "vestido-azul_003")
	}
	if got := folderName("???", 1); got != "produto_001" {
		t.Errorf("folderName fallback = %q, want %q", got, "produto_001")
	}
}
