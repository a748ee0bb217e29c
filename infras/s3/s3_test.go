package s3_test

import (
	"reziro/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		key    string
		want   string
	}{
		{name: "plain", domain: "https://cdn.example.com", key: "exports/u-1/2024-03.json", want: "https://cdn.example.com/exports/u-1/2024-03.json"},
		{name: "trailing slash", domain: "https://cdn.example.com/", key: "exports/a.json", want: "https://cdn.example.com/exports/a.json"},
		{name: "leading slash", domain: "https://cdn.example.com", key: "/exports/a.json", want: "https://cdn.example.com/exports/a.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.PublicURL(tt.domain, tt.key))
		})
	}
}
