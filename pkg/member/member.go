// Package member extracts chamber rosters from member list pages.
//
// Two page variants are supported, each by its own strategy. The caller picks the strategy,
// there is no detection of the page variant.
package member

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/umputun/legiscope/pkg/domain"
)

// Strategy selects how a member list document is segmented into records
type Strategy int

// enum of strategies
const (
	BlockStrategy Strategy = iota // photo card blocks, the regular member list page
	TableStrategy                 // html table rows, one member per row
)

// ParseStrategy converts config value ("block" or "table") to Strategy, empty value means block
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "block":
		return BlockStrategy, nil
	case "table":
		return TableStrategy, nil
	default:
		return BlockStrategy, fmt.Errorf("unknown member list strategy %q", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case BlockStrategy:
		return "block"
	case TableStrategy:
		return "table"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseMemberList extracts member records of a chamber roster with the given strategy.
// Records without a name are dropped, duplicates by chamber and id keep the first occurrence.
// Derived links point to domain.DefaultBaseURL.
func ParseMemberList(doc string, chamber domain.Chamber, strategy Strategy) []domain.MemberRecord {
	return ParseMemberListWithBase(doc, domain.DefaultBaseURL, chamber, strategy)
}

// ParseMemberListWithBase is ParseMemberList with derived links built on base site url
func ParseMemberListWithBase(doc, base string, chamber domain.Chamber, strategy Strategy) []domain.MemberRecord {
	base = strings.TrimRight(base, "/")
	if base == "" {
		base = domain.DefaultBaseURL
	}
	var records []domain.MemberRecord
	switch strategy {
	case TableStrategy:
		records = parseTable(doc, base, chamber)
	default:
		records = parseBlocks(doc, base, chamber)
	}
	return dedup(records)
}

// Summary holds roster counts by chamber and party
type Summary struct {
	Total      int `json:"total"`
	House      int `json:"house"`
	Senate     int `json:"senate"`
	Republican int `json:"republican"`
	Democrat   int `json:"democrat"`
}

// Summarize counts members by chamber and party code
func Summarize(members []domain.MemberRecord) Summary {
	res := Summary{Total: len(members)}
	for _, m := range members {
		switch m.Chamber {
		case domain.House:
			res.House++
		case domain.Senate:
			res.Senate++
		}
		switch m.PartyCode {
		case "R":
			res.Republican++
		case "D":
			res.Democrat++
		}
	}
	return res
}

// SortByLastName orders members in place by the last word of the name, case-insensitive.
// The sort is stable, members with the same last name keep their order.
func SortByLastName(members []domain.MemberRecord) {
	slices.SortStableFunc(members, func(a, b domain.MemberRecord) int {
		return cmp.Compare(lastName(a.Name), lastName(b.Name))
	})
}

func lastName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

// newRecord fills identity, party and derived links shared by both strategies
func newRecord(base, id, name, partyCode string, chamber domain.Chamber, chamberCode string) domain.MemberRecord {
	party := domain.PartyFromCode(partyCode)
	if party == "" {
		partyCode = ""
	}
	rec := domain.MemberRecord{
		ID:          id,
		Name:        name,
		Party:       party,
		PartyCode:   partyCode,
		Chamber:     chamber,
		ChamberCode: chamberCode,
		Counties:    []string{},
	}
	domain.NewMemberLinks(base, chamberCode, id).Apply(&rec)
	return rec
}

func dedup(records []domain.MemberRecord) []domain.MemberRecord {
	res := make([]domain.MemberRecord, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		key := r.ChamberCode + "/" + r.ID
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, r)
	}
	return res
}
