package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://example.com/feed.xml", false},
		{"valid http", "http://example.com/rss", false},
		{"valid with port", "https://example.com:8443/feed", false},
		{"ftp scheme", "ftp://example.com/feed.xml", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no scheme", "example.com/feed.xml", true},
		{"no host", "https:///feed.xml", true},
		{"localhost", "http://localhost/feed", true},
		{"localhost with port", "http://localhost:8080/feed", true},
		{"loopback ip", "http://127.0.0.1/feed", true},
		{"private 10 net", "http://10.0.0.5/feed", true},
		{"private 192 net", "http://192.168.1.1/feed", true},
		{"private 172 net", "http://172.16.0.1/feed", true},
		{"link local", "http://169.254.1.1/feed", true},
		{"unspecified", "http://0.0.0.0/feed", true},
		{"ipv6 loopback", "http://[::1]/feed", true},
		{"public ip", "http://93.184.216.34/feed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
