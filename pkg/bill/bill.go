// Package bill extracts structured fields from a single bill detail page.
//
// The page has no stable schema: each section is located by the labels around it and
// parsed independently, so a missing or malformed section never affects the others.
package bill

import (
	"regexp"
	"strings"

	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/extract"
)

const primaryMarker = "(Primary)"

var (
	sponsorLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(/Members/Biography/([HS])/(\d+)\)`)
	historyGateRe = regexp.MustCompile(`(?is)History.*?(<table|Date.*?Chamber.*?Action)`)
	dateLabelRe   = regexp.MustCompile(`(?i)\bDate:`)
	historyRowRe  = regexp.MustCompile(`(?is)^\s*(\d{1,2}/\d{1,2}/\d{4}).*?Chamber:\s*(House|Senate).*?Action:\s*(.*)$`)
	voteRowRe     = regexp.MustCompile(
		`(?is)^\s*(\d{1,2}/\d{1,2}/\d{4}.*?)Subject:\s*([^\n]+).*?Aye:\s*(\d*).*?No:\s*(\d*).*?Result:\s*\[([^\]]+)\]`)
	titleRe = regexp.MustCompile(`(?i)(?:House|Senate)\s+Bill\s+\d+\s*\n*\[([^\]]+)\]`)
)

// labels of the sections following history on a bill page
var historyEnds = []string{"\nVotes", "######", "Keywords:", "Attributes:", "Counties:", "Statutes:"}

// ParseBillDetail extracts every known section of a bill page.
// A degenerate or empty document gives a BillDetail with all parts empty.
func ParseBillDetail(doc string) domain.BillDetail {
	return ParseBillDetailWithBase(doc, domain.DefaultBaseURL)
}

// ParseBillDetailWithBase is ParseBillDetail with sponsor profile links built on base site url
func ParseBillDetailWithBase(doc, base string) domain.BillDetail {
	return domain.BillDetail{
		FullTitle:  FullTitle(doc),
		Attributes: Attributes(doc),
		Sponsors:   SponsorsWithBase(doc, base),
		History:    History(doc),
		Votes:      Votes(doc),
		Keywords:   Keywords(doc),
	}
}

// Sponsors extracts member links from the "Sponsors:" section in document order.
// Every sponsor linked before the first "(Primary)" marker is primary, the rest are co-sponsors.
func Sponsors(doc string) []domain.Sponsor {
	return SponsorsWithBase(doc, domain.DefaultBaseURL)
}

// SponsorsWithBase is Sponsors with profile links built on base site url
func SponsorsWithBase(doc, base string) []domain.Sponsor {
	base = strings.TrimRight(base, "/")
	if base == "" {
		base = domain.DefaultBaseURL
	}
	section, ok := extract.Section(doc, "Sponsors:", "Attributes:", "Keywords:", "Counties:")
	if !ok {
		return []domain.Sponsor{}
	}

	matches := sponsorLinkRe.FindAllStringSubmatchIndex(section, -1)
	markerAt := strings.Index(section, primaryMarker)

	res := make([]domain.Sponsor, 0, len(matches))
	primary := true
	for _, loc := range matches {
		// one-way transition, once the marker is behind us everyone else is a co-sponsor
		primary = primary && (markerAt < 0 || markerAt >= loc[0])
		letter, id := section[loc[4]:loc[5]], section[loc[6]:loc[7]]
		res = append(res, domain.Sponsor{
			Name:       strings.TrimSpace(section[loc[2]:loc[3]]),
			Chamber:    domain.ChamberFromCode(letter),
			MemberID:   id,
			Primary:    primary,
			ProfileURL: domain.ProfileURL(base, letter, id),
		})
	}
	return res
}

// History extracts action history rows following the "History" heading, up to the votes heading
// or the next known field. Action text is collapsed to a single line, rows with empty action are dropped.
func History(doc string) []domain.ActionHistoryEntry {
	res := []domain.ActionHistoryEntry{}
	if !historyGateRe.MatchString(doc) {
		return res
	}
	section, _ := extract.Section(doc, "History", historyEnds...)

	for _, seg := range dateSegments(section) {
		m := historyRowRe.FindStringSubmatch(seg)
		if m == nil {
			continue
		}
		action := extract.CollapseSpace(extract.Until(m[3], "Documents:"))
		if action == "" {
			continue
		}
		res = append(res, domain.ActionHistoryEntry{
			Date:    strings.TrimSpace(m[1]),
			Chamber: normalizeChamber(m[2]),
			Action:  action,
		})
	}
	return res
}

// Votes extracts roll-call votes. Counts that are not numbers become 0.
func Votes(doc string) []domain.VoteRecord {
	res := []domain.VoteRecord{}
	for _, seg := range dateSegments(doc) {
		m := voteRowRe.FindStringSubmatch(seg)
		if m == nil {
			continue
		}
		date, _, _ := strings.Cut(strings.TrimSpace(m[1]), "\n")
		res = append(res, domain.VoteRecord{
			Date:    strings.TrimSpace(date),
			Subject: strings.TrimSpace(m[2]),
			Aye:     extract.Atoi(m[3]),
			No:      extract.Atoi(m[4]),
			Result:  strings.TrimSpace(m[5]),
		})
	}
	return res
}

// Keywords splits the "Keywords:" field on semicolons and newlines.
// The field runs to the next "######" heading, the next known field or the end of the document.
func Keywords(doc string) []string {
	res := []string{}
	section, ok := extract.Section(doc, "Keywords:", "######", "Counties:", "Statutes:", "Attributes:", "Sponsors:")
	if !ok {
		return res
	}
	for _, kw := range strings.FieldsFunc(section, func(r rune) bool { return r == ';' || r == '\n' }) {
		kw = strings.TrimSpace(kw)
		if kw == "" || strings.HasPrefix(kw, "#") {
			continue
		}
		res = append(res, kw)
	}
	return res
}

// Attributes returns the free text after "Attributes:" up to a blank line or the next known label
func Attributes(doc string) string {
	rest, ok := extract.After(doc, "Attributes:")
	if !ok {
		return ""
	}
	rest = extract.TrimLeftSpace(rest)
	return strings.TrimSpace(extract.Until(rest, "\n\n", "\r\n\r\n", "Counties:", "Statutes:", "Keywords:"))
}

// FullTitle returns the bracketed long title following the "House Bill N" / "Senate Bill N" heading
func FullTitle(doc string) string {
	if m := titleRe.FindStringSubmatch(doc); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// dateSegments splits text into the bodies following each "Date:" label, each running up to the
// next label. History rows and votes both start with a date, so a row can't spill into the next one.
func dateSegments(text string) []string {
	groups := extract.Groups(text, dateLabelRe, "Date:")
	res := make([]string, 0, len(groups))
	for _, g := range groups {
		res = append(res, g[len(g)-1])
	}
	return res
}

// normalizeChamber maps the case-insensitive chamber capture onto domain values
func normalizeChamber(s string) domain.Chamber {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "house":
		return domain.House
	case "senate":
		return domain.Senate
	default:
		return domain.Unknown
	}
}
