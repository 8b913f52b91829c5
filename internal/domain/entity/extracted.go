package entity

// ExtractedProduct is the transient result of scraping a marketplace product
// page. It is never persisted directly; the caller turns it into a Product.
type ExtractedProduct struct {
	Title     string
	Price     string   // formatted currency string, empty when unparseable
	ImageURLs []string // absolute URLs, page order
}
