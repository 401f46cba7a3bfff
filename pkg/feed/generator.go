package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/legiscope/pkg/domain"
)

// Generator creates RSS digests from parsed feed entries
type Generator struct {
	baseURL string
	policy  *bluemonday.Policy
}

// NewGenerator creates a new feed generator, baseURL is where the digest itself is served
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  bluemonday.StrictPolicy(),
	}
}

// GenerateRSS creates an RSS 2.0 feed with health-related entries only
func (g *Generator) GenerateRSS(entries []domain.FeedEntry, topic string) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, topic)

	rssItems := make([]*RSSItem, 0, len(entries))
	for _, e := range entries {
		if !e.IsHealthRelated {
			continue
		}
		rssItems = append(rssItems, g.convertToRSSItem(e))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         fmt.Sprintf("Legiscope - %s bills", topic),
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Bills matching %s topic keywords", topic),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a feed entry to an RSS item, synopsis is stripped of any markup
func (g *Generator) convertToRSSItem(e domain.FeedEntry) *RSSItem {
	title := e.Title
	if e.BillNumber != "" && e.BillNumber != e.Title {
		title = fmt.Sprintf("%s: %s", e.BillNumber, e.Title)
	}

	return &RSSItem{
		Title:       title,
		Link:        e.Link,
		GUID:        RSSGUID{Value: e.ID, IsPermaLink: e.ID != "" && e.ID == e.Link},
		Description: strings.TrimSpace(html.UnescapeString(g.policy.Sanitize(e.Synopsis))),
		PubDate:     e.PublicationDate,
		Categories:  []string{string(e.Chamber)},
	}
}
