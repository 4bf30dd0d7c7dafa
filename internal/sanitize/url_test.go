package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTTPSURL(t *testing.T) {
	assert.True(t, IsHTTPSURL("https://www.amazon.com/dp/B0CX59VH6C"))
	assert.True(t, IsHTTPSURL("https://example.com/path?a=1&b=2"))

	assert.False(t, IsHTTPSURL(""))
	assert.False(t, IsHTTPSURL("http://example.com"))
	assert.False(t, IsHTTPSURL("javascript:alert(1)"))
	assert.False(t, IsHTTPSURL("https://"))
	assert.False(t, IsHTTPSURL("://bad"))
}

func TestAffiliateURLStripsMarkup(t *testing.T) {
	assert.Equal(t,
		"https://example.com/item",
		AffiliateURL(`https://example.com/item<script>alert(1)</script>`))
}

func TestAffiliateURLKeepsQueryAmpersands(t *testing.T) {
	link := "https://www.aliexpress.com/item/1.html?aff_fcid=c&aff_fsk=a&aff_platform=portals-tool"
	assert.Equal(t, link, AffiliateURL(link))
}
