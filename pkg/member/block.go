package member

import (
	"regexp"
	"strings"

	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/extract"
)

// headshotMarker starts every member card of the regular member list page
const headshotMarker = "[![Headshot of"

var (
	bioIDRe     = regexp.MustCompile(`Members/Biography/([HS])/(\d+)`)
	bioNameRe   = regexp.MustCompile(`\[([^\]\[]+)\]\(/Members/Biography/[HS]/\d+\)`)
	partyRe     = regexp.MustCompile(`\(([RD])\)`)
	districtRe  = regexp.MustCompile(`District\s*(\d+)`)
	countyRe    = regexp.MustCompile(`\[([^\]]+)\]\(/Members/CountyRepresentation/[^)]+\)`)
	officeRe    = regexp.MustCompile(`\*\*Office\*\*:\s*Rm\.\s*([^\n*]+)`)
	phoneRe     = regexp.MustCompile(`\*\*Phone\*\*:\s*([\d()\- ]+)`)
	assistantRe = regexp.MustCompile(`\*\*Assistant\*\*:\s*([^\n*]+)`)
)

// parseBlocks splits the page on member photo captions and extracts one record per card
func parseBlocks(doc, base string, chamber domain.Chamber) []domain.MemberRecord {
	res := []domain.MemberRecord{}
	for _, block := range strings.Split(doc, headshotMarker) {
		idm := bioIDRe.FindStringSubmatch(block)
		if idm == nil {
			continue
		}
		name := firstGroup(bioNameRe, block)
		if name == "" {
			continue
		}

		code := chamber.Code()
		if code == "" {
			code = idm[1]
		}
		rec := newRecord(base, idm[2], name, firstGroup(partyRe, block), chamber, code)
		rec.District = extract.Atoi(firstGroup(districtRe, block))
		for _, m := range countyRe.FindAllStringSubmatch(block, -1) {
			rec.Counties = append(rec.Counties, strings.TrimSpace(m[1]))
		}
		if office := firstGroup(officeRe, block); office != "" {
			rec.Office = "Rm. " + office
		}
		rec.Phone = firstGroup(phoneRe, block)
		rec.Assistant = firstGroup(assistantRe, block)
		res = append(res, rec)
	}
	return res
}

// firstGroup returns the trimmed first capture of re in text, or empty string
func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
