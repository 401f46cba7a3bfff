package domain

import "fmt"

// DefaultBaseURL is the public site derived member and bill links point to unless another base is given
const DefaultBaseURL = "https://www.ncleg.gov"

// MemberRecord is a chamber roster entry
type MemberRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Party         Party    `json:"party"`
	PartyCode     string   `json:"partyCode"`
	Chamber       Chamber  `json:"chamber"`
	ChamberCode   string   `json:"chamberCode"`
	District      int      `json:"district"` // 0 when unknown
	Counties      []string `json:"counties"`
	Office        string   `json:"office"`
	Phone         string   `json:"phone"`
	Assistant     string   `json:"assistant"`
	PhotoURL      string   `json:"photoUrl"`
	ProfileURL    string   `json:"profileUrl"`
	CommitteesURL string   `json:"committeesUrl"`
	VotesURL      string   `json:"votesUrl"`
	BillsURL      string   `json:"billsUrl"`
}

// MemberLinks holds urls derived from chamber code and member id
type MemberLinks struct {
	Photo      string
	Profile    string
	Committees string
	Votes      string
	Bills      string
}

// NewMemberLinks builds member links from the fixed site templates
func NewMemberLinks(base, chamberCode, id string) MemberLinks {
	return MemberLinks{
		Photo:      fmt.Sprintf("%s/Members/MemberImage/%s/%s/Low", base, chamberCode, id),
		Profile:    ProfileURL(base, chamberCode, id),
		Committees: fmt.Sprintf("%s/Members/Committees/%s/%s", base, chamberCode, id),
		Votes:      fmt.Sprintf("%s/Members/Votes/%s/%s", base, chamberCode, id),
		Bills:      fmt.Sprintf("%s/Members/IntroducedBills/%s/%s", base, chamberCode, id),
	}
}

// ProfileURL returns member biography url
func ProfileURL(base, chamberCode, id string) string {
	return fmt.Sprintf("%s/Members/Biography/%s/%s", base, chamberCode, id)
}

// Apply copies links into the member record
func (l MemberLinks) Apply(m *MemberRecord) {
	m.PhotoURL = l.Photo
	m.ProfileURL = l.Profile
	m.CommitteesURL = l.Committees
	m.VotesURL = l.Votes
	m.BillsURL = l.Bills
}
