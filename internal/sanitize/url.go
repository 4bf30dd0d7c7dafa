// Package sanitize guards the two URL fields every product must carry.
package sanitize

import (
	"html"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag and attribute; only text survives.
var strict = bluemonday.StrictPolicy()

// IsHTTPSURL reports whether value parses as an absolute https URL with a host.
func IsHTTPSURL(value string) bool {
	if value == "" {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}

// AffiliateURL strips any markup smuggled into an outbound product link. The
// sanitizer entity-escapes the text it keeps, so unescape to restore literal
// ampersands between query parameters.
func AffiliateURL(value string) string {
	return html.UnescapeString(strict.Sanitize(value))
}
