package entity

import "testing"

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "valid https URL",
			url:     "https://shopee.com.br/produto/123",
			wantErr: false,
		},
		{
			name:    "valid http URL",
			url:     "http://example.com/item",
			wantErr: false,
		},
		{
			name:    "valid URL with query",
			url:     "https://example.com/item?ref=afiliado",
			wantErr: false,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "invalid scheme - ftp",
			url:     "ftp://example.com/item",
			wantErr: true,
		},
		{
			name:    "invalid scheme - javascript",
			url:     "javascript:alert(1)",
			wantErr: true,
		},
		{
			name:    "no host",
			url:     "https://",
			wantErr: true,
		},
		{
			name:    "no scheme",
			url:     "shopee.com.br/produto",
			wantErr: true,
		},
		{
			name:    "URL exceeding maximum length",
			url:     "https://example.com/" + string(make([]byte, 2050)),
			wantErr: true,
		},
		{
			name:    "localhost",
			url:     "http://localhost/item",
			wantErr: true,
		},
		{
			name:    "loopback literal",
			url:     "http://127.0.0.1/item",
			wantErr: true,
		},
		{
			name:    "private network literal",
			url:     "http://192.168.1.10/item",
			wantErr: true,
		},
		{
			name:    "metadata endpoint",
			url:     "http://169.254.169.254/latest/meta-data",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) err=%v, wantErr=%v", tt.url, err, tt.wantErr)
			}
		})
	}
}
