package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/legiscope/pkg/config"
	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/server/mocks"
)

const (
	allFeedURL    = "https://www.ncleg.gov/Legislation/Bills/LastActionByYear/2025/All/RSS"
	billURL       = "https://www.ncleg.gov/BillLookup/2025/H2"
	digestURL     = "https://webservices.ncleg.gov/BillDigests/2025/H2"
	houseURL      = "https://www.ncleg.gov/Members/MemberList/H"
	senateURL     = "https://www.ncleg.gov/Members/MemberList/S"
	committeesURL = "https://webservices.ncleg.gov/AllActiveCommittees/2025/true"
)

const feedDoc = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0"><channel>
	<item>
		<title>H2 - Medicaid Transformation</title>
		<link>https://x/h2</link>
		<description>An Act to transform Medicaid.</description>
		<pubDate>Mon, 01 Jan 2025 00:00:00</pubDate>
	</item>
	<item>
		<title>S10 - Highway Bridge Repair Act</title>
		<link>https://x/s10</link>
		<description>allocates funds for bridges</description>
		<pubDate>Tue, 02 Jan 2025 00:00:00</pubDate>
	</item>
</channel></rss>`

const billDoc = `House Bill 2
[An Act to Transform Medicaid](/BillLookup/2025/H2)
[View summary](/Legislation/Bills/Summaries/2025/H2-v1.pdf)

Sponsors: [Jane Smith](/Members/Biography/H/101) (Primary) [Alan Brown](/Members/Biography/H/202)
Attributes: Public, Contains Appropriations

Keywords: HEALTH; MEDICAID`

const houseDoc = `[![Headshot of Rep. Jane Smith](/Members/MemberImage/H/101/Low)](/Members/Biography/H/101)
[Jane Smith](/Members/Biography/H/101) (R)
District 12
[![Headshot of Rep. Alan Brown](/Members/MemberImage/H/202/Low)](/Members/Biography/H/202)
[Alan Brown](/Members/Biography/H/202) (D)
District 3
`

const senateDoc = `[![Headshot of Sen. Carla Adams](/Members/MemberImage/S/301/Low)](/Members/Biography/S/301)
[Carla Adams](/Members/Biography/S/301) (R)
District 7
`

const committeesDoc = `[
	{"sCommitteeName":"Health","sChamberCode":"H","bNonStandingCommittee":false},
	{"sCommitteeName":"Finance","sChamberCode":"S","bNonStandingCommittee":false},
	{"sCommitteeName":"Oversight","sChamberCode":"N","bNonStandingCommittee":true}
]`

func TestServer_Bills(t *testing.T) {
	srv := New(testConfig(":8080", "block"), fetcherFor(map[string]string{allFeedURL: feedDoc}), Params{})

	t.Run("all bills", func(t *testing.T) {
		rec := serve(t, srv, "/api/v1/bills")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "all", resp["feed"])
		assert.Equal(t, 2.0, resp["count"])
		assert.Equal(t, allFeedURL, resp["source"])
		assert.Equal(t, "2025-03-04T10:20:30Z", resp["fetchedAt"])

		bills := resp["bills"].([]any)
		require.Len(t, bills, 2)
		first := bills[0].(map[string]any)
		assert.Equal(t, "H 2", first["billNumber"])
		assert.Equal(t, "Medicaid Transformation", first["title"])
		assert.Equal(t, "House", first["chamber"])
		assert.Equal(t, true, first["isHealthRelated"])
	})

	t.Run("health only", func(t *testing.T) {
		rec := serve(t, srv, "/api/v1/bills?health=true")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, 1.0, resp["count"])
	})

	t.Run("unknown feed falls back to all", func(t *testing.T) {
		rec := serve(t, srv, "/api/v1/bills?feed=blah")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, allFeedURL, decode(t, rec)["source"])
	})

	t.Run("fetch failure", func(t *testing.T) {
		rec := serve(t, srv, "/api/v1/bills?feed=filed&chamber=s")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "filed", resp["feed"])
		assert.Equal(t, "https://www.ncleg.gov/Legislation/Bills/FiledBillsFeed/2025/S", resp["source"])
		assert.Contains(t, resp["error"], "503")
	})

	t.Run("bad chamber", func(t *testing.T) {
		rec := serve(t, srv, "/api/v1/bills?chamber=X")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, decode(t, rec)["success"])
	})
}

func TestServer_BillDetail(t *testing.T) {
	t.Run("with summary", func(t *testing.T) {
		fetcher := fetcherFor(map[string]string{billURL: billDoc, digestURL: "digest body"})
		summarizer := &mocks.SummarizerMock{ExtractFunc: func(body, pageURL string) (string, error) {
			return "Transforms the Medicaid program into managed care.", nil
		}}
		srv := New(testConfig(":8080", "block"), fetcher, Params{Summarizer: summarizer})

		rec := serve(t, srv, "/api/v1/bill-detail?bill=h2")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "H2", resp["bill"])
		assert.Equal(t, "An Act to Transform Medicaid", resp["fullTitle"])
		assert.Equal(t, "Public, Contains Appropriations", resp["attributes"])
		assert.Equal(t, []any{"HEALTH", "MEDICAID"}, resp["keywords"])
		assert.Equal(t, []any{}, resp["history"])
		assert.Equal(t, []any{}, resp["votes"])
		assert.Equal(t, billURL, resp["billUrl"])
		assert.Equal(t, "https://www.ncleg.gov/Legislation/Bills/Summaries/2025/H2-v1.pdf", resp["summaryUrl"])
		assert.Equal(t, "Transforms the Medicaid program into managed care.", resp["summary"])
		assert.Equal(t, "2025-03-04T10:20:30Z", resp["fetchedAt"])

		sponsors := resp["sponsors"].([]any)
		require.Len(t, sponsors, 2)
		assert.Equal(t, true, sponsors[0].(map[string]any)["primary"])
		assert.Equal(t, false, sponsors[1].(map[string]any)["primary"])

		require.Len(t, summarizer.ExtractCalls(), 1)
		assert.Equal(t, "digest body", summarizer.ExtractCalls()[0].Body)
		assert.Equal(t, digestURL, summarizer.ExtractCalls()[0].PageURL)

		calls := fetcher.FetchCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, domain.KindBill, calls[0].Kind)
		assert.Equal(t, domain.KindDigest, calls[1].Kind)
	})

	t.Run("digest failure gives null summary", func(t *testing.T) {
		summarizer := &mocks.SummarizerMock{ExtractFunc: func(body, pageURL string) (string, error) {
			return "", errors.New("not reached")
		}}
		srv := New(testConfig(":8080", "block"), fetcherFor(map[string]string{billURL: "House Bill 2"}),
			Params{Summarizer: summarizer})

		rec := serve(t, srv, "/api/v1/bill-detail?bill=H2")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Nil(t, resp["summary"])
		assert.Nil(t, resp["summaryUrl"])
		assert.Equal(t, "", resp["fullTitle"])
		assert.Equal(t, []any{}, resp["sponsors"])
		assert.Empty(t, summarizer.ExtractCalls())
	})

	t.Run("summarizer rejects digest", func(t *testing.T) {
		summarizer := &mocks.SummarizerMock{ExtractFunc: func(body, pageURL string) (string, error) {
			return "", errors.New("no summary")
		}}
		srv := New(testConfig(":8080", "block"), fetcherFor(map[string]string{billURL: billDoc, digestURL: "short"}),
			Params{Summarizer: summarizer})

		rec := serve(t, srv, "/api/v1/bill-detail?bill=H2")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decode(t, rec)["summary"])
		assert.Len(t, summarizer.ExtractCalls(), 1)
	})

	t.Run("bill fetch failure", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(nil), Params{})
		rec := serve(t, srv, "/api/v1/bill-detail?bill=S257")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "S257", resp["bill"])
	})

	t.Run("missing and malformed bill", func(t *testing.T) {
		fetcher := fetcherFor(nil)
		srv := New(testConfig(":8080", "block"), fetcher, Params{})
		for _, target := range []string{"/api/v1/bill-detail", "/api/v1/bill-detail?bill=X2",
			"/api/v1/bill-detail?bill=H2/../x", "/api/v1/bill-detail?bill=H"} {
			rec := serve(t, srv, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Equal(t, false, decode(t, rec)["success"], target)
		}
		assert.Empty(t, fetcher.FetchCalls())
	})
}

func TestServer_Members(t *testing.T) {
	docs := map[string]string{houseURL: houseDoc, senateURL: senateDoc}

	t.Run("all chambers", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(docs), Params{})
		rec := serve(t, srv, "/api/v1/members")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, 3.0, resp["count"])
		assert.Equal(t, map[string]any{"total": 3.0, "house": 2.0, "senate": 1.0, "republican": 2.0, "democrat": 1.0},
			resp["summary"])

		members := resp["members"].([]any)
		require.Len(t, members, 3)
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, m.(map[string]any)["name"].(string))
		}
		assert.Equal(t, []string{"Carla Adams", "Alan Brown", "Jane Smith"}, names)
		assert.Equal(t, "https://www.ncleg.gov/Members/Biography/S/301", members[0].(map[string]any)["profileUrl"])
	})

	t.Run("one chamber", func(t *testing.T) {
		fetcher := fetcherFor(docs)
		srv := New(testConfig(":8080", "block"), fetcher, Params{})
		rec := serve(t, srv, "/api/v1/members?chamber=Senate")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1.0, decode(t, rec)["count"])
		require.Len(t, fetcher.FetchCalls(), 1)
		assert.Equal(t, senateURL, fetcher.FetchCalls()[0].URL)
		assert.Equal(t, domain.KindMembers, fetcher.FetchCalls()[0].Kind)
	})

	t.Run("failed chamber skipped", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(map[string]string{houseURL: houseDoc}), Params{})
		rec := serve(t, srv, "/api/v1/members?chamber=all")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, 2.0, resp["count"])
		assert.Equal(t, 0.0, resp["summary"].(map[string]any)["senate"])
	})

	t.Run("all chambers failed", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(nil), Params{})
		rec := serve(t, srv, "/api/v1/members")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, false, decode(t, rec)["success"])
	})

	t.Run("table strategy", func(t *testing.T) {
		table := `<table><tr><td><a href="/Members/Biography/H/55">Dana White</a></td><td>(D)</td>` +
			`<td>District 4</td><td>919-555-0100</td></tr></table>`
		srv := New(testConfig(":8080", "table"), fetcherFor(map[string]string{houseURL: table}), Params{})
		rec := serve(t, srv, "/api/v1/members?chamber=house")
		require.Equal(t, http.StatusOK, rec.Code)
		members := decode(t, rec)["members"].([]any)
		require.Len(t, members, 1)
		m := members[0].(map[string]any)
		assert.Equal(t, "Dana White", m["name"])
		assert.Equal(t, "Democrat", m["party"])
		assert.Equal(t, 4.0, m["district"])
		assert.Equal(t, "919-555-0100", m["phone"])
	})

	t.Run("bad chamber", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(docs), Params{})
		rec := serve(t, srv, "/api/v1/members?chamber=joint")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_LinksUseConfiguredBase(t *testing.T) {
	cfg := testConfig(":8080", "block")
	cfg.GetSourceConfigFunc = func() config.SourceConfig {
		return config.SourceConfig{BaseURL: "http://mirror.local/", WebServicesURL: "http://ws.mirror.local",
			SessionYear: "2025"}
	}
	fetcher := fetcherFor(map[string]string{
		"http://mirror.local/BillLookup/2025/H2":   billDoc,
		"http://mirror.local/Members/MemberList/S": senateDoc,
	})
	srv := New(cfg, fetcher, Params{})

	rec := serve(t, srv, "/api/v1/bill-detail?bill=H2")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	sponsors := resp["sponsors"].([]any)
	require.Len(t, sponsors, 2)
	assert.Equal(t, "http://mirror.local/Members/Biography/H/101", sponsors[0].(map[string]any)["profileUrl"])
	assert.Equal(t, "http://mirror.local/Legislation/Bills/Summaries/2025/H2-v1.pdf", resp["summaryUrl"])

	rec = serve(t, srv, "/api/v1/members?chamber=senate")
	require.Equal(t, http.StatusOK, rec.Code)
	members := decode(t, rec)["members"].([]any)
	require.Len(t, members, 1)
	m := members[0].(map[string]any)
	assert.Equal(t, "http://mirror.local/Members/Biography/S/301", m["profileUrl"])
	assert.Equal(t, "http://mirror.local/Members/MemberImage/S/301/Low", m["photoUrl"])
}

func TestServer_Committees(t *testing.T) {
	t.Run("pass-through with summary", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(map[string]string{committeesURL: committeesDoc}), Params{})
		rec := serve(t, srv, "/api/v1/committees")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, 3.0, resp["count"])
		assert.Equal(t, map[string]any{"total": 3.0, "standing": 2.0, "nonStanding": 1.0, "house": 1.0,
			"senate": 1.0, "joint": 1.0}, resp["summary"])

		committees := resp["committees"].([]any)
		require.Len(t, committees, 3)
		assert.Equal(t, "Health", committees[0].(map[string]any)["sCommitteeName"])
	})

	t.Run("bad json", func(t *testing.T) {
		srv := New(testConfig(":8080", "block"), fetcherFor(map[string]string{committeesURL: "<html>"}), Params{})
		rec := serve(t, srv, "/api/v1/committees")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("fetch failure", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{FetchFunc: func(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, error) {
			return domain.Document{}, context.DeadlineExceeded
		}}
		srv := New(testConfig(":8080", "block"), fetcher, Params{})
		rec := serve(t, srv, "/api/v1/committees")
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, decode(t, rec)["error"], "deadline exceeded")
		assert.Equal(t, domain.KindCommittees, fetcher.FetchCalls()[0].Kind)
	})
}
