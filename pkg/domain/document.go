package domain

import "time"

// DocumentKind identifies the shape of a fetched source document
type DocumentKind string

// enum of document kinds
const (
	KindFeed       DocumentKind = "feed"
	KindBill       DocumentKind = "bill"
	KindDigest     DocumentKind = "digest"
	KindMembers    DocumentKind = "members"
	KindCommittees DocumentKind = "committees"
)

// Document is raw source text as fetched from the legislature site
type Document struct {
	URL       string
	Kind      DocumentKind
	Body      string
	FetchedAt time.Time
}

// Committee is the subset of committee fields used for summary counts,
// the full record is passed through as-is.
type Committee struct {
	ChamberCode string `json:"sChamberCode"`
	NonStanding bool   `json:"bNonStandingCommittee"`
}
