package feed

import (
	"fmt"
	"net"
	"net/url"
)

// ValidateURL rejects feed URLs that could be used to probe internal
// services: only http/https schemes are accepted, and loopback, private and
// link-local hosts are refused.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid feed url: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", parsed.Scheme)
	}

	host := parsed.Hostname()
	if host == "" {
		return fmt.Errorf("feed url has no host")
	}
	if host == "localhost" {
		return fmt.Errorf("localhost feeds are not allowed")
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return fmt.Errorf("feed url resolves to a private address")
		}
	}

	return nil
}
