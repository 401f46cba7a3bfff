package bill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/legiscope/pkg/domain"
)

const billPage = `# House Bill 2
[Medicaid Transformation and Reinvestment Act]

###### Sponsors:
Representatives [Donny Lambeth](/Members/Biography/H/686), [Larry Potts](/Members/Biography/H/732) (Primary)
[Wayne Sasser](/Members/Biography/S/406); [Timothy Reeder](/Members/Biography/H/788)

###### Attributes:
Public; Text has changed

###### Counties:
No counties specifically cited

###### History
Date: 1/29/2025
Chamber: House
Action: Filed
Documents: [Filed](/Sessions/2025/Bills/House/PDF/H2v0.pdf)
Date: 1/30/2025
Chamber: House
Action: Passed 1st
    Reading
Date: 2/4/2025
Chamber: Senate
Action:
Date: 2/5/2025
Chamber: Senate
Action: Ref To Com On Rules and Operations of the Senate Documents: [Edition 2]

###### Votes
Date: 3/12/2025 10:15AM
Subject: Second Reading
Aye: 110
No: 5
Result: [PASS]

Date: 3/13/2025
Subject: Third Reading
Aye: 108
No: 7
Result: [PASS]

###### Keywords:
HEALTH; MEDICAID
PUBLIC HEALTH;
;
#### artifact

###### Bill Summaries
See /Legislation/Bills/Summaries/2025/H2?v=2 for details`

func TestParseBillDetail(t *testing.T) {
	detail := ParseBillDetail(billPage)

	assert.Equal(t, "Medicaid Transformation and Reinvestment Act", detail.FullTitle)
	assert.Equal(t, "Public; Text has changed", detail.Attributes)

	require.Len(t, detail.Sponsors, 4)
	assert.Equal(t, domain.Sponsor{Name: "Donny Lambeth", Chamber: domain.House, MemberID: "686", Primary: true,
		ProfileURL: "https://www.ncleg.gov/Members/Biography/H/686"}, detail.Sponsors[0])
	assert.Equal(t, "Larry Potts", detail.Sponsors[1].Name)
	assert.True(t, detail.Sponsors[1].Primary)
	assert.Equal(t, "Wayne Sasser", detail.Sponsors[2].Name)
	assert.Equal(t, domain.Senate, detail.Sponsors[2].Chamber)
	assert.False(t, detail.Sponsors[2].Primary)
	assert.False(t, detail.Sponsors[3].Primary)

	require.Len(t, detail.History, 3)
	assert.Equal(t, domain.ActionHistoryEntry{Date: "1/29/2025", Chamber: domain.House, Action: "Filed"}, detail.History[0])
	assert.Equal(t, "Passed 1st Reading", detail.History[1].Action)
	assert.Equal(t, domain.ActionHistoryEntry{Date: "2/5/2025", Chamber: domain.Senate,
		Action: "Ref To Com On Rules and Operations of the Senate"}, detail.History[2])

	require.Len(t, detail.Votes, 2)
	assert.Equal(t, domain.VoteRecord{Date: "3/12/2025 10:15AM", Subject: "Second Reading", Aye: 110, No: 5,
		Result: "PASS"}, detail.Votes[0])
	assert.Equal(t, "3/13/2025", detail.Votes[1].Date)
	assert.Equal(t, 108, detail.Votes[1].Aye)

	assert.Equal(t, []string{"HEALTH", "MEDICAID", "PUBLIC HEALTH"}, detail.Keywords)
}

func TestSponsors_PrimaryMarker(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantPrimary []bool
	}{
		{
			name: "marker after first sponsor",
			doc: "Sponsors: [A](/Members/Biography/H/1) (Primary) [B](/Members/Biography/H/2) " +
				"[C](/Members/Biography/S/3)",
			wantPrimary: []bool{true, false, false},
		},
		{
			name: "marker after third sponsor",
			doc: "Sponsors: [A](/Members/Biography/H/1), [B](/Members/Biography/H/2), " +
				"[C](/Members/Biography/H/3) (Primary); [D](/Members/Biography/H/4)",
			wantPrimary: []bool{true, true, true, false},
		},
		{
			name:        "no marker means all primary",
			doc:         "Sponsors: [A](/Members/Biography/H/1) [B](/Members/Biography/H/2)",
			wantPrimary: []bool{true, true},
		},
		{
			name: "second marker does not flip back",
			doc: "Sponsors: [A](/Members/Biography/H/1) (Primary) [B](/Members/Biography/H/2) (Primary) " +
				"[C](/Members/Biography/H/3)",
			wantPrimary: []bool{true, false, false},
		},
		{
			name:        "marker before any sponsor",
			doc:         "Sponsors: (Primary) [A](/Members/Biography/H/1)",
			wantPrimary: []bool{false},
		},
		{
			name: "section bounded by keywords",
			doc: "Sponsors: [A](/Members/Biography/H/1)\nKeywords: (Primary) [B](/Members/Biography/H/2)",
			wantPrimary: []bool{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sponsors := Sponsors(tt.doc)
			require.Len(t, sponsors, len(tt.wantPrimary))
			for i, want := range tt.wantPrimary {
				assert.Equal(t, want, sponsors[i].Primary, "sponsor %d", i)
			}
		})
	}
}

func TestSponsorsWithBase(t *testing.T) {
	sponsors := SponsorsWithBase(billPage, "http://mirror.local/")
	require.Len(t, sponsors, 4)
	assert.Equal(t, "http://mirror.local/Members/Biography/H/686", sponsors[0].ProfileURL)
	assert.Equal(t, "http://mirror.local/Members/Biography/S/406", sponsors[2].ProfileURL)

	detail := ParseBillDetailWithBase(billPage, "")
	assert.Equal(t, "https://www.ncleg.gov/Members/Biography/H/686", detail.Sponsors[0].ProfileURL)
}

func TestSponsors_None(t *testing.T) {
	assert.Empty(t, Sponsors("no sponsors section"))
	assert.Empty(t, Sponsors("Sponsors: to be announced\nAttributes: Public"))
	assert.NotNil(t, Sponsors(""))
}

func TestVotes(t *testing.T) {
	t.Run("single line vote", func(t *testing.T) {
		votes := Votes("Date: 1/1/2025 Subject: Final Passage Aye: 61 No: 2 Result: [PASS]")
		require.Len(t, votes, 1)
		assert.Equal(t, domain.VoteRecord{Date: "1/1/2025", Subject: "Final Passage", Aye: 61, No: 2, Result: "PASS"},
			votes[0])
	})

	t.Run("non numeric counts", func(t *testing.T) {
		votes := Votes("Date: 1/1/2025 Subject: Voice Vote Aye: n/a No: - Result: [FAIL]")
		require.Len(t, votes, 1)
		assert.Equal(t, 0, votes[0].Aye)
		assert.Equal(t, 0, votes[0].No)
		assert.Equal(t, "FAIL", votes[0].Result)
	})

	t.Run("history rows are not votes", func(t *testing.T) {
		votes := Votes("Date: 1/1/2025 Chamber: House Action: Filed\nDate: 1/2/2025 Subject: S Aye: 1 No: 0 Result: [PASS]")
		require.Len(t, votes, 1)
		assert.Equal(t, "1/2/2025", votes[0].Date)
	})

	t.Run("update label is not a vote date", func(t *testing.T) {
		votes := Votes("Last Update: 1/1/2025 Subject: Stale Aye: 1 No: 1 Result: [PASS]")
		assert.Empty(t, votes)
	})

	t.Run("no votes", func(t *testing.T) {
		assert.Empty(t, Votes("Date: 1/1/2025 Subject: incomplete"))
	})
}

func TestHistory(t *testing.T) {
	t.Run("requires history heading", func(t *testing.T) {
		assert.Empty(t, History("Date: 1/1/2025 Chamber: House Action: Filed"))
	})

	t.Run("table shape", func(t *testing.T) {
		doc := "History <table> Date: 1/1/2025 Chamber: senate Action: Filed\n\n  and referred </table>"
		history := History(doc)
		require.Len(t, history, 1)
		assert.Equal(t, domain.Senate, history[0].Chamber)
		assert.Equal(t, "Filed and referred </table>", history[0].Action)
	})

	t.Run("ends at votes heading", func(t *testing.T) {
		doc := "History\nDate: 1/29/2025 Chamber: House Action: Filed\n" +
			"Date: 1/30/2025 Chamber: Senate Action: Passed\n 1st Reading\nVotes\n" +
			"Date: 2/3/2025 Subject: Second Reading Aye: 40 No: 8 Result: [PASS]"
		history := History(doc)
		require.Len(t, history, 2)
		assert.Equal(t, domain.ActionHistoryEntry{Date: "1/30/2025", Chamber: domain.Senate, Action: "Passed 1st Reading"},
			history[1])
		assert.Len(t, Votes(doc), 1)
	})

	t.Run("ends at next field", func(t *testing.T) {
		doc := "History\nDate: 1/29/2025 Chamber: House Action: Filed\nKeywords: HEALTH"
		history := History(doc)
		require.Len(t, history, 1)
		assert.Equal(t, "Filed", history[0].Action)
	})

	t.Run("date label inside a word is not a row", func(t *testing.T) {
		doc := "History\nDate: 1/29/2025 Chamber: House Action: Filed Last Update: 2/1/2025 Chamber: Senate Action: x"
		history := History(doc)
		require.Len(t, history, 1)
		assert.Equal(t, "1/29/2025", history[0].Date)
		assert.Equal(t, "Filed Last Update: 2/1/2025 Chamber: Senate Action: x", history[0].Action)
	})
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"A", "B C", "D"}, Keywords("Keywords:\n A; B C\nD;"))
	assert.Empty(t, Keywords("no keywords here"))
	assert.Empty(t, Keywords("Keywords: ###### Next"))
	assert.Equal(t, []string{"HEALTH", "MEDICAID"}, Keywords("Keywords: HEALTH; MEDICAID\nCounties: Wake"))
	assert.Equal(t, []string{"HEALTH"}, Keywords("Keywords:\nHEALTH\nStatutes: 90-1"))
}

func TestAttributes(t *testing.T) {
	tests := []struct{ name, doc, want string }{
		{"blank line", "Attributes:\n\nPublic\n\nother text", "Public"},
		{"next label", "Attributes: Public; Contains Appropriations Counties: Wake", "Public; Contains Appropriations"},
		{"statutes label", "Attributes: Local\nStatutes: 90-1", "Local"},
		{"end of document", "Attributes: Public ", "Public"},
		{"missing", "nothing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Attributes(tt.doc))
		})
	}
}

func TestFullTitle(t *testing.T) {
	assert.Equal(t, "An Act To Fund Schools", FullTitle("Senate Bill 257\n\n[An Act To Fund Schools]"))
	assert.Equal(t, "X", FullTitle("house bill 9 [X]"))
	assert.Empty(t, FullTitle("House Resolution 3 [Not a bill]"))
}

func TestParseBillDetail_MissingSections(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		detail := ParseBillDetail("")
		assert.Empty(t, detail.FullTitle)
		assert.Empty(t, detail.Attributes)
		assert.Empty(t, detail.Sponsors)
		assert.Empty(t, detail.History)
		assert.Empty(t, detail.Votes)
		assert.Empty(t, detail.Keywords)
	})

	t.Run("no keywords keeps the rest", func(t *testing.T) {
		doc := "House Bill 5 [Nurse Staffing]\nSponsors: [A](/Members/Biography/H/1) (Primary)\n" +
			"Attributes: Public\n\nDate: 1/1/2025 Subject: Final Passage Aye: 61 No: 2 Result: [PASS]"
		detail := ParseBillDetail(doc)
		assert.Empty(t, detail.Keywords)
		assert.Equal(t, "Nurse Staffing", detail.FullTitle)
		assert.Equal(t, "Public", detail.Attributes)
		require.Len(t, detail.Sponsors, 1)
		require.Len(t, detail.Votes, 1)
		assert.Equal(t, 61, detail.Votes[0].Aye)
	})
}

func TestSummaryURL(t *testing.T) {
	assert.Equal(t, "https://www.ncleg.gov/Legislation/Bills/Summaries/2025/H2?v=2",
		SummaryURL(billPage, domain.DefaultBaseURL, "2025"))
	assert.Empty(t, SummaryURL(billPage, domain.DefaultBaseURL, "2023"))
	assert.Empty(t, SummaryURL("", domain.DefaultBaseURL, "2025"))
}
