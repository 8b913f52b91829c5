package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *ShopeeExtractor {
	return NewShopeeExtractor(&http.Client{Timeout: 5 * time.Second})
}

func pageWithPayload(payload string) string {
	return fmt.Sprintf(`<html><head>
<script id="__NEXT_DATA__" type="application/json">%s</script>
</head><body></body></html>`, payload)
}

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestShopeeExtractor_Extract(t *testing.T) {
	payload := `{"data":{"item":{"name":"Vestido Longo Floral","images":["abc123"],"price":15000}}}`
	srv := serve(t, pageWithPayload(payload))

	got, err := newTestExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Vestido Longo Floral", got.Title)
	assert.Equal(t, "R$ 150,00", got.Price)
	assert.Equal(t, []string{"https://down-br.img.susercontent.com/file/abc123"}, got.ImageURLs)
}

func TestShopeeExtractor_absoluteImageURLsPassThrough(t *testing.T) {
	payload := `{"item":{"name":"Bolsa","images":["https://cdn.example.com/a.jpg","id456","",null]}}`
	srv := serve(t, pageWithPayload(payload))

	got, err := newTestExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"https://down-br.img.susercontent.com/file/id456",
	}, got.ImageURLs)
}

func TestShopeeExtractor_priceFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{
			name: "price wins",
			item: `{"name":"X","images":[],"price":15000,"price_min":9900}`,
			want: "R$ 150,00",
		},
		{
			name: "zero price falls to price_min",
			item: `{"name":"X","images":[],"price":0,"price_min":9900}`,
			want: "R$ 99,00",
		},
		{
			name: "falls through to pre-discount price",
			item: `{"name":"X","images":[],"price_min_before_discount":250000000}`,
			want: "R$ 2.500,00",
		},
		{
			name: "no price fields yields empty",
			item: `{"name":"X","images":[]}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, pageWithPayload(`{"item":`+tt.item+`}`))
			got, err := newTestExtractor().Extract(context.Background(), srv.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Price)
		})
	}
}

func TestShopeeExtractor_missingPayload(t *testing.T) {
	srv := serve(t, `<html><body><p>sem dados</p></body></html>`)

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrPayloadNotFound)
}

func TestShopeeExtractor_malformedPayload(t *testing.T) {
	srv := serve(t, pageWithPayload(`{"data":{`))

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrPayloadParse)
}

func TestShopeeExtractor_noProductNode(t *testing.T) {
	srv := serve(t, pageWithPayload(`{"props":{"pageProps":{"other":1}}}`))

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestShopeeExtractor_blankTitle(t *testing.T) {
	srv := serve(t, pageWithPayload(`{"item":{"name":"   ","images":["a"]}}`))

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTitleMissing)
}

func TestShopeeExtractor_titleFallsBackToTitleField(t *testing.T) {
	srv := serve(t, pageWithPayload(`{"item":{"name":"","title":"Sapato Nude","images":["a"]}}`))

	got, err := newTestExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Sapato Nude", got.Title)
}

func TestShopeeExtractor_httpError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestShopeeExtractor_networkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestShopeeExtractor_sendsBrowserHeaders(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte(pageWithPayload(`{"item":{"name":"X","images":[]}}`)))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotLang, "pt-BR")
}

func TestFindNodeWithKeys(t *testing.T) {
	tree := map[string]any{
		"a": []any{
			map[string]any{"name": "inner", "images": []any{}},
		},
		"b": map[string]any{"name": "no images here"},
	}

	got := findNodeWithKeys(tree, "name", "images")
	if assert.NotNil(t, got) {
		assert.Equal(t, "inner", got["name"])
	}

	assert.Nil(t, findNodeWithKeys(map[string]any{"x": 1}, "name", "images"))
	assert.Nil(t, findNodeWithKeys(nil, "name", "images"))
}

func TestShopeeExtractor_deterministicAcrossCalls(t *testing.T) {
	payload := `{"z":{"item":{"name":"Z","images":["z1"]}},"a":{"item":{"name":"A","images":["a1"]}}}`
	srv := serve(t, pageWithPayload(payload))

	first, err := newTestExtractor().Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := newTestExtractor().Extract(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, first.Title, got.Title)
	}
}
