package source

import (
	"math/rand"
	"net/http"

	"github.com/umputun/legiscope/pkg/domain"
)

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,es;q=0.8",
	"en-US,en;q=0.9,fr;q=0.8",
}

// acceptByKind is the Accept header sent for each document kind
var acceptByKind = map[domain.DocumentKind]string{
	domain.KindFeed:       "application/rss+xml, application/xml, text/xml",
	domain.KindCommittees: "application/json",
}

const acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// addBrowserHeaders sets browser-like headers, the legislature site rejects bare clients from time to time
func addBrowserHeaders(req *http.Request, kind domain.DocumentKind) {
	accept, ok := acceptByKind[kind]
	if !ok {
		accept = acceptHTML
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation

	if kind == domain.KindCommittees {
		return // json endpoint, no navigation headers
	}
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
}
