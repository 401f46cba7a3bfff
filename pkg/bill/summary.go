package bill

import (
	"fmt"
	"regexp"
)

// SummaryURL returns the absolute url of the bill summary linked from the page, or empty string
func SummaryURL(doc, base, sessionYear string) string {
	re := regexp.MustCompile(`/Legislation/Bills/Summaries/` + regexp.QuoteMeta(sessionYear) + `/[^\s"')]+`)
	path := re.FindString(doc)
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s%s", base, path)
}
