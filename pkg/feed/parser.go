package feed

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/extract"
	"github.com/umputun/legiscope/pkg/health"
)

// billNumberRe matches bill-type prefix and number at the start of entry title, i.e. "H2", "SB 257", "HJR 12"
var billNumberRe = regexp.MustCompile(`(?i)^(H[BRJC]*|S[BRJC]*)\s*(\d+)`)

const titleSeparator = " - "

// ParseFeed splits a bill feed document into entries, in document order.
// Entries with missing fields are still returned with those fields empty,
// a document without any entry gives an empty list.
func ParseFeed(doc string) []domain.FeedEntry {
	blocks := extract.Blocks(doc, "item")
	res := make([]domain.FeedEntry, 0, len(blocks))
	for _, block := range blocks {
		res = append(res, parseEntry(block))
	}
	return res
}

func parseEntry(block string) domain.FeedEntry {
	rawTitle := extract.Field(block, "title")
	link := extract.Field(block, "link")
	description := extract.Field(block, "description")
	pubDate := extract.Field(block, "pubDate")

	entry := domain.FeedEntry{
		BillNumber:      BillNumber(rawTitle),
		Title:           displayTitle(rawTitle),
		Synopsis:        extract.DecodeEntities(description),
		Link:            link,
		PublicationDate: pubDate,
		Chamber:         titleChamber(rawTitle),
		IsHealthRelated: health.IsHealthRelated(rawTitle, description),
	}

	entry.ID = link
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("%s-%s", entry.BillNumber, pubDate)
	}
	return entry
}

// BillNumber derives normalized "{prefix} {number}" from a feed title, e.g. "H2 - Act" gives "H 2".
// Titles without a recognizable prefix fall back to the text before the first " - ".
func BillNumber(title string) string {
	if m := billNumberRe.FindStringSubmatch(title); m != nil {
		return m[1] + " " + m[2]
	}
	head, _, _ := strings.Cut(title, titleSeparator)
	return strings.TrimSpace(head)
}

// displayTitle is everything after the first separator, or the whole title
func displayTitle(title string) string {
	_, rest, found := strings.Cut(title, titleSeparator)
	if !found {
		return title
	}
	if rest = strings.TrimSpace(rest); rest == "" {
		return title
	}
	return rest
}

func titleChamber(title string) domain.Chamber {
	switch {
	case strings.HasPrefix(title, "H"):
		return domain.House
	case strings.HasPrefix(title, "S"):
		return domain.Senate
	default:
		return domain.Unknown
	}
}
