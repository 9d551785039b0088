package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sitelint/pkg/geo"
)

func TestFindUnexpandedAcronyms(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		allowlist []string
		want      []geo.UnexpandedAcronym
	}{
		{
			name: "expanded on first use",
			text: "Our CDN (Content Delivery Network) is fast. The CDN caches everything.",
			want: nil,
		},
		{
			name: "reverse expansion counts",
			text: "The Content Delivery Network (CDN) caches everything. A CDN helps.",
			want: nil,
		},
		{
			name: "never expanded",
			text: "The CDN caches pages. Our CDN spans regions.",
			want: []geo.UnexpandedAcronym{{Acronym: "CDN", Count: 2}},
		},
		{
			name: "default allowlist",
			text: "HTML and JSON need no introduction.",
			want: nil,
		},
		{
			name:      "configured allowlist",
			text:      "The ERP suite handles billing.",
			allowlist: []string{"erp"},
			want:      nil,
		},
		{
			name: "plural form maps to the singular",
			text: "Multiple CDNs exist.",
			want: []geo.UnexpandedAcronym{{Acronym: "CDN", Count: 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geo.FindUnexpandedAcronyms(tc.text, tc.allowlist))
		})
	}
}
