package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/umputun/legiscope/pkg/domain"
)

// default endpoints of the legislature
const (
	DefaultWebServicesURL = "https://webservices.ncleg.gov"
	DefaultSessionYear    = "2025"
)

// FeedKinds lists every supported bill feed, unknown kinds fall back to "all"
var FeedKinds = []string{"all", "filed", "actions", "calendar", "chaptered", "keyword",
	"governor-pending", "governor-signed", "governor-vetoed"}

// URLs builds source document urls for one legislative session
type URLs struct {
	Base        string // public site, e.g. https://www.ncleg.gov
	WebServices string // structured endpoints, e.g. https://webservices.ncleg.gov
	SessionYear string
}

// NewURLs makes URLs with defaults for empty values, trailing slashes are dropped
func NewURLs(base, webServices, sessionYear string) URLs {
	res := URLs{Base: base, WebServices: webServices, SessionYear: sessionYear}
	if res.Base == "" {
		res.Base = domain.DefaultBaseURL
	}
	if res.WebServices == "" {
		res.WebServices = DefaultWebServicesURL
	}
	if res.SessionYear == "" {
		res.SessionYear = DefaultSessionYear
	}
	res.Base = strings.TrimRight(res.Base, "/")
	res.WebServices = strings.TrimRight(res.WebServices, "/")
	return res
}

// FeedRequest selects one of the bill feeds. Chamber is "H" or "S", dates are passed as-is.
type FeedRequest struct {
	Kind      string
	Chamber   string
	Date      string
	StartDate string
	EndDate   string
}

// Feed returns the RSS url for the requested feed kind
func (u URLs) Feed(req FeedRequest) string {
	bills := fmt.Sprintf("%s/Legislation/Bills", u.Base)
	chamber := req.Chamber
	if chamber == "" {
		chamber = "H"
	}
	chamber = url.PathEscape(chamber)
	all := fmt.Sprintf("%s/LastActionByYear/%s/All/RSS", bills, u.SessionYear)

	switch req.Kind {
	case "filed":
		if req.Date != "" {
			return fmt.Sprintf("%s/FiledByDay/%s/%s/%s/RSS", bills, u.SessionYear, chamber, url.PathEscape(req.Date))
		}
		return fmt.Sprintf("%s/FiledBillsFeed/%s/%s", bills, u.SessionYear, chamber)
	case "actions":
		if req.StartDate != "" && req.EndDate != "" {
			return fmt.Sprintf("%s/ChamberActionsByDay/%s/%s/%s/%s/RSS", bills, u.SessionYear, chamber,
				url.PathEscape(req.StartDate), url.PathEscape(req.EndDate))
		}
		return fmt.Sprintf("%s/WithAction/%s/Any/B/RSS", bills, u.SessionYear)
	case "calendar":
		if req.Date != "" {
			return fmt.Sprintf("%s/Calendars/BillsOnCalendarFeed/%s/%s/%s", u.Base, u.SessionYear, chamber,
				url.PathEscape(req.Date))
		}
		return all
	case "chaptered":
		return fmt.Sprintf("%s/LastActionByYear/%s/All/Chaptered/RSS", bills, u.SessionYear)
	case "keyword":
		return fmt.Sprintf("%s/ByKeyword/%s/All/RSS", bills, u.SessionYear)
	case "governor-pending":
		return fmt.Sprintf("%s/PendingGovernorSignature/%s/RSS", bills, u.SessionYear)
	case "governor-signed":
		return fmt.Sprintf("%s/WithAction/%s/400/RSS", bills, u.SessionYear)
	case "governor-vetoed":
		return fmt.Sprintf("%s/WithAction/%s/500/RSS", bills, u.SessionYear)
	default:
		return all
	}
}

// BillLookup returns the bill detail page url, bill is like "H2" or "S257"
func (u URLs) BillLookup(bill string) string {
	return fmt.Sprintf("%s/BillLookup/%s/%s", u.Base, u.SessionYear, url.PathEscape(bill))
}

// Digest returns the bill digest url
func (u URLs) Digest(bill string) string {
	return fmt.Sprintf("%s/BillDigests/%s/%s", u.WebServices, u.SessionYear, url.PathEscape(bill))
}

// MemberList returns the roster page url of a chamber
func (u URLs) MemberList(chamber domain.Chamber) string {
	return fmt.Sprintf("%s/Members/MemberList/%s", u.Base, chamber.Code())
}

// Committees returns the url of the active committees list (json)
func (u URLs) Committees() string {
	return fmt.Sprintf("%s/AllActiveCommittees/%s/true", u.WebServices, u.SessionYear)
}
