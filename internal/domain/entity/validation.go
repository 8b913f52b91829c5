package entity

import (
	"fmt"
	"net"
	"net/url"
)

// maxURLLength caps incoming URLs so pathological input cannot blow up
// storage or the extractor.
const maxURLLength = 2048

// ValidateURL checks that a URL is well-formed, uses http or https and names a
// host. Affiliate links and marketplace URLs both go through this before they
// are stored or fetched. Hosts that are literal private or loopback addresses
// are rejected so the extractor cannot be pointed at internal services.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	host := parsed.Hostname()
	if host == "localhost" {
		return &ValidationError{Field: "url", Message: "url cannot point to private network"}
	}
	if ip := net.ParseIP(host); ip != nil && isPrivateIP(ip) {
		return &ValidationError{Field: "url", Message: "url cannot point to private network"}
	}

	return nil
}

// isPrivateIP reports whether an address belongs to loopback, link-local or
// RFC1918 space. Link-local covers the cloud metadata endpoint.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsPrivate()
}
