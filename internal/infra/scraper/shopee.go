// Package scraper extracts product data from marketplace product pages.
// Marketplace pages are Next.js applications that hydrate themselves from a
// JSON payload embedded in a script tag; the extractor pulls that payload out
// and searches it for the product record instead of parsing the rendered DOM.
package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"promo-studio/internal/content"
	"promo-studio/internal/domain/entity"
)

// Extraction failures carry user-facing messages: the handler surfaces them
// verbatim so the operator can fall back to manual product entry.
var (
	// ErrFetch indicates the page could not be retrieved.
	ErrFetch = errors.New("não foi possível carregar a página do produto")

	// ErrPayloadNotFound indicates the page has no embedded data script tag.
	ErrPayloadNotFound = errors.New("não foi possível localizar os dados do produto")

	// ErrPayloadParse indicates the embedded payload is not valid JSON.
	ErrPayloadParse = errors.New("não foi possível ler os dados do produto")

	// ErrProductNotFound indicates no product-shaped record exists in the payload.
	ErrProductNotFound = errors.New("não foi possível encontrar imagens do produto")

	// ErrTitleMissing indicates the product record has no usable title.
	ErrTitleMissing = errors.New("não foi possível identificar o título do produto")
)

// IsExtractionError reports whether err is one of the extraction failures
// whose message may be shown to the operator.
func IsExtractionError(err error) bool {
	for _, sentinel := range []error{
		ErrFetch,
		ErrPayloadNotFound,
		ErrPayloadParse,
		ErrProductNotFound,
		ErrTitleMissing,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

const (
	// defaultCDNBase is where the marketplace serves product images; bare
	// image identifiers in the payload resolve against it.
	defaultCDNBase = "https://down-br.img.susercontent.com/file/"

	// userAgent mimics a desktop browser; the marketplace serves an empty
	// shell to unknown clients.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	acceptLanguage = "pt-BR,pt;q=0.9,en;q=0.8"

	// maxBodySize limits the response read to prevent memory exhaustion.
	maxBodySize = 10 << 20
)

// ShopeeExtractor extracts a product title, price and image list from a
// marketplace product page. It holds no mutable state beyond the HTTP client,
// so concurrent Extract calls for different URLs are safe.
type ShopeeExtractor struct {
	client  *http.Client
	cdnBase string
}

// NewShopeeExtractor creates an extractor using the given HTTP client. The
// client's timeout bounds the single fetch attempt; no retries are performed.
func NewShopeeExtractor(client *http.Client) *ShopeeExtractor {
	return &ShopeeExtractor{client: client, cdnBase: defaultCDNBase}
}

// Extract fetches the product page at url and returns the extracted product.
// It makes exactly one best-effort attempt; every failure mode maps to one of
// the sentinel errors above.
func (e *ShopeeExtractor) Extract(ctx context.Context, url string) (*entity.ExtractedProduct, error) {
	html, err := e.fetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	payload, err := extractPayload(html)
	if err != nil {
		return nil, err
	}

	item := findNodeWithKeys(payload, "name", "images")
	if item == nil {
		return nil, ErrProductNotFound
	}

	title := stringField(item, "name")
	if title == "" {
		title = stringField(item, "title")
	}
	if title == "" {
		return nil, ErrTitleMissing
	}

	return &entity.ExtractedProduct{
		Title:     title,
		Price:     content.FormatPriceValue(firstTruthy(item, "price", "price_min", "price_min_before_discount")),
		ImageURLs: e.imageURLs(item["images"]),
	}, nil
}

// fetchHTML performs the single GET against the product page.
func (e *ShopeeExtractor) fetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: HTTP %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return string(body), nil
}

// extractPayload locates the __NEXT_DATA__ script tag and decodes its JSON.
func extractPayload(html string) (any, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadParse, err)
	}

	jsonText := strings.TrimSpace(doc.Find("script#__NEXT_DATA__").First().Text())
	if jsonText == "" {
		return nil, ErrPayloadNotFound
	}

	var payload any
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadParse, err)
	}
	return payload, nil
}

// findNodeWithKeys walks the decoded JSON tree depth first and returns the
// first map containing every required key. Map children are visited in sorted
// key order so repeated runs over the same payload pick the same node; JSON
// trees are acyclic, so no cycle guard is needed.
func findNodeWithKeys(node any, requiredKeys ...string) map[string]any {
	switch n := node.(type) {
	case map[string]any:
		hasAll := true
		for _, key := range requiredKeys {
			if _, ok := n[key]; !ok {
				hasAll = false
				break
			}
		}
		if hasAll {
			return n
		}

		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if found := findNodeWithKeys(n[k], requiredKeys...); found != nil {
				return found
			}
		}
	case []any:
		for _, child := range n {
			if found := findNodeWithKeys(child, requiredKeys...); found != nil {
				return found
			}
		}
	}
	return nil
}

// imageURLs turns the raw images value into absolute URLs, preserving order.
// Entries that already carry an http(s) scheme pass through; anything else is
// treated as an opaque identifier on the marketplace CDN.
func (e *ShopeeExtractor) imageURLs(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var urls []string
	for _, img := range list {
		switch v := img.(type) {
		case string:
			if v == "" {
				continue
			}
			if strings.HasPrefix(v, "http") {
				urls = append(urls, v)
			} else {
				urls = append(urls, e.cdnBase+v)
			}
		case float64:
			if v == 0 {
				continue
			}
			urls = append(urls, e.cdnBase+strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return urls
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// firstTruthy mirrors the marketplace payload convention that a zero or empty
// price field means "look at the next one".
func firstTruthy(m map[string]any, keys ...string) any {
	for _, key := range keys {
		switch v := m[key].(type) {
		case nil:
			continue
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v != 0 {
				return v
			}
		case bool:
			if v {
				return v
			}
		default:
			return v
		}
	}
	return nil
}
