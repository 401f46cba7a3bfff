package member

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/extract"
)

var (
	rowBioRe   = regexp.MustCompile(`Biography/([HS])/(\d+)`)
	rowPhoneRe = regexp.MustCompile(`(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`)
)

// parseTable reads the tabular member list variant, one member per <tr>.
// The anchor to the biography page gives identity, party, district and phone are best-effort.
func parseTable(doc, base string, chamber domain.Chamber) []domain.MemberRecord {
	res := []domain.MemberRecord{}
	// html parser drops <tr> outside of table context, bare rows are wrapped
	if extract.IndexFold(doc, "<table") < 0 {
		doc = "<table>" + doc + "</table>"
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return res
	}

	gq.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var code, id, name string
		row.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			m := rowBioRe.FindStringSubmatch(a.AttrOr("href", ""))
			if m == nil {
				return true
			}
			code, id, name = m[1], m[2], extract.CollapseSpace(a.Text())
			return false
		})
		if id == "" || name == "" {
			return
		}

		rowChamber := domain.ChamberFromCode(code)
		if rowChamber == domain.Unknown {
			rowChamber = chamber
		}
		// cells are joined with a space, otherwise the phone regex may glue neighbor digits
		text := strings.Join(row.Find("td,th").Map(func(_ int, c *goquery.Selection) string {
			return c.Text()
		}), " ")
		if text == "" {
			text = row.Text()
		}

		rec := newRecord(base, id, name, firstGroup(partyRe, text), rowChamber, code)
		rec.District = extract.Atoi(firstGroup(districtRe, text))
		rec.Phone = firstGroup(rowPhoneRe, text)
		res = append(res, rec)
	})
	return res
}
