// Package content turns bill digest documents into plain summary text.
package content

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
)

// minSummaryLength is the shortest text accepted as a summary, shorter bodies are error stubs
const minSummaryLength = 50

// ErrNoSummary returned when the digest has no usable text
var ErrNoSummary = errors.New("no summary text")

// DigestExtractor extracts summary text from digest documents.
// The digest endpoint answers with plain text for most bills and with a full html page for some.
type DigestExtractor struct {
	policy *bluemonday.Policy
}

// NewDigestExtractor creates a new digest extractor
func NewDigestExtractor() *DigestExtractor {
	return &DigestExtractor{policy: bluemonday.StrictPolicy()}
}

// Extract returns the summary text of the digest body. pageURL is the digest url, used by
// the html extraction to resolve the page.
func (e *DigestExtractor) Extract(body, pageURL string) (string, error) {
	if isHTMLPage(body) {
		return e.extractHTML(body, pageURL)
	}

	text := strings.TrimSpace(html.UnescapeString(e.policy.Sanitize(body)))
	if len(text) <= minSummaryLength {
		return "", ErrNoSummary
	}
	return text, nil
}

func (e *DigestExtractor) extractHTML(body, pageURL string) (string, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
	}
	if parsedURL, err := url.Parse(pageURL); err == nil && parsedURL.Host != "" {
		opts.OriginalURL = parsedURL
	}

	result, err := trafilatura.Extract(strings.NewReader(body), opts)
	if err != nil {
		return "", fmt.Errorf("extract digest %s: %w", pageURL, err)
	}
	if result == nil {
		return "", ErrNoSummary
	}

	text := strings.TrimSpace(result.ContentText)
	if len(text) <= minSummaryLength {
		return "", ErrNoSummary
	}
	return text, nil
}

// isHTMLPage detects a full html document as opposed to a text body with inline markup
func isHTMLPage(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<!doctype") || strings.Contains(head, "<html")
}
