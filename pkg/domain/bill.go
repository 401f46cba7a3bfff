package domain

// FeedEntry is a single bill update published in a legislature feed
type FeedEntry struct {
	ID              string  `json:"id"`
	BillNumber      string  `json:"billNumber"`
	Title           string  `json:"title"`
	Synopsis        string  `json:"synopsis"`
	Link            string  `json:"link"`
	PublicationDate string  `json:"publicationDate"`
	Chamber         Chamber `json:"chamber"`
	IsHealthRelated bool    `json:"isHealthRelated"`
}

// Sponsor is a member sponsoring a bill
type Sponsor struct {
	Name       string  `json:"name"`
	Chamber    Chamber `json:"chamber"`
	MemberID   string  `json:"memberId"`
	Primary    bool    `json:"primary"`
	ProfileURL string  `json:"profileUrl"`
}

// ActionHistoryEntry is one step of a bill's action history.
// Date is kept as published, it is never parsed.
type ActionHistoryEntry struct {
	Date    string  `json:"date"`
	Chamber Chamber `json:"chamber"`
	Action  string  `json:"action"`
}

// VoteRecord is a roll-call vote on a bill
type VoteRecord struct {
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Aye     int    `json:"aye"`
	No      int    `json:"no"`
	Result  string `json:"result"`
}

// BillDetail aggregates everything extracted from a single bill page.
// Every part is optional, a missing section leaves its zero value.
type BillDetail struct {
	FullTitle  string               `json:"fullTitle"`
	Attributes string               `json:"attributes"`
	Sponsors   []Sponsor            `json:"sponsors"`
	History    []ActionHistoryEntry `json:"history"`
	Votes      []VoteRecord         `json:"votes"`
	Keywords   []string             `json:"keywords"`
}
