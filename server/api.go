package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/legiscope/pkg/bill"
	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/feed"
	"github.com/umputun/legiscope/pkg/member"
	"github.com/umputun/legiscope/pkg/source"
)

var billParamRe = regexp.MustCompile(`^[HS]\d{1,5}$`)

// billsHandler returns parsed entries of one of the bill feeds.
// GET /api/v1/bills?feed=filed&chamber=H&date=&startDate=&endDate=&health=true
func (s *Server) billsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := source.FeedRequest{
		Kind:      q.Get("feed"),
		Chamber:   strings.ToUpper(q.Get("chamber")),
		Date:      q.Get("date"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	if req.Kind == "" {
		req.Kind = "all"
	}
	if req.Chamber != "" && req.Chamber != "H" && req.Chamber != "S" {
		renderError(w, r, fmt.Errorf("invalid chamber %q, expected H or S", req.Chamber), http.StatusBadRequest,
			map[string]any{"feed": req.Kind})
		return
	}

	url := s.urls.Feed(req)
	doc, err := s.fetcher.Fetch(r.Context(), url, domain.KindFeed)
	if err != nil {
		log.Printf("[WARN] failed to fetch %s feed: %v", req.Kind, err)
		renderError(w, r, err, http.StatusBadGateway, map[string]any{"feed": req.Kind, "source": url})
		return
	}

	bills := feed.ParseFeed(doc.Body)
	if q.Get("health") == "true" {
		bills = healthOnly(bills)
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"feed":      req.Kind,
		"count":     len(bills),
		"fetchedAt": fetchedAt(doc.FetchedAt),
		"source":    url,
		"bills":     bills,
	})
}

// billDetailResponse is the bill-detail payload, summary fields are null when not available
type billDetailResponse struct {
	Success bool   `json:"success"`
	Bill    string `json:"bill"`
	domain.BillDetail
	Summary    *string `json:"summary"`
	BillURL    string  `json:"billUrl"`
	SummaryURL *string `json:"summaryUrl"`
	FetchedAt  string  `json:"fetchedAt"`
}

// billDetailHandler extracts all sections of a bill page and tries to add the digest summary.
// GET /api/v1/bill-detail?bill=H2
func (s *Server) billDetailHandler(w http.ResponseWriter, r *http.Request) {
	billID := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("bill")))
	if billID == "" {
		renderError(w, r, errors.New("bill parameter required (e.g., ?bill=H2)"), http.StatusBadRequest)
		return
	}
	if !billParamRe.MatchString(billID) {
		renderError(w, r, fmt.Errorf("invalid bill %q, expected chamber letter and number (e.g., H2)", billID),
			http.StatusBadRequest, map[string]any{"bill": billID})
		return
	}

	billURL := s.urls.BillLookup(billID)
	doc, err := s.fetcher.Fetch(r.Context(), billURL, domain.KindBill)
	if err != nil {
		log.Printf("[WARN] failed to fetch bill %s: %v", billID, err)
		renderError(w, r, err, http.StatusBadGateway, map[string]any{"bill": billID})
		return
	}

	resp := billDetailResponse{
		Success:    true,
		Bill:       billID,
		BillDetail: bill.ParseBillDetailWithBase(doc.Body, s.urls.Base),
		BillURL:    billURL,
		FetchedAt:  fetchedAt(doc.FetchedAt),
	}
	if summaryURL := bill.SummaryURL(doc.Body, s.urls.Base, s.urls.SessionYear); summaryURL != "" {
		resp.SummaryURL = &summaryURL
	}
	if summary := s.digestSummary(r.Context(), billID); summary != "" {
		resp.Summary = &summary
	}

	renderJSON(w, r, http.StatusOK, resp)
}

// digestSummary returns the bill digest text or empty string, failures are logged only
func (s *Server) digestSummary(ctx context.Context, billID string) string {
	if s.summarizer == nil {
		return ""
	}
	digestURL := s.urls.Digest(billID)
	doc, err := s.fetcher.Fetch(ctx, digestURL, domain.KindDigest)
	if err != nil {
		log.Printf("[DEBUG] no digest for %s: %v", billID, err)
		return ""
	}
	summary, err := s.summarizer.Extract(doc.Body, digestURL)
	if err != nil {
		log.Printf("[DEBUG] no summary in digest for %s: %v", billID, err)
		return ""
	}
	return summary
}

// membersHandler returns members of one or both chambers.
// GET /api/v1/members?chamber=house|senate|all
func (s *Server) membersHandler(w http.ResponseWriter, r *http.Request) {
	var chambers []domain.Chamber
	switch strings.ToLower(r.URL.Query().Get("chamber")) {
	case "", "all":
		chambers = []domain.Chamber{domain.House, domain.Senate}
	case "house":
		chambers = []domain.Chamber{domain.House}
	case "senate":
		chambers = []domain.Chamber{domain.Senate}
	default:
		renderError(w, r, errors.New("invalid chamber, expected house, senate or all"), http.StatusBadRequest)
		return
	}

	type result struct {
		members   []domain.MemberRecord
		fetchedAt time.Time
		err       error
	}
	results := make([]result, len(chambers))

	var eg errgroup.Group
	for i, ch := range chambers {
		eg.Go(func() error {
			doc, err := s.fetcher.Fetch(r.Context(), s.urls.MemberList(ch), domain.KindMembers)
			if err != nil {
				log.Printf("[WARN] failed to fetch %s members: %v", ch, err)
				results[i] = result{err: err}
				return nil
			}
			results[i] = result{members: member.ParseMemberListWithBase(doc.Body, s.urls.Base, ch, s.strategy), fetchedAt: doc.FetchedAt}
			return nil
		})
	}
	_ = eg.Wait() // failed chambers are skipped, errors are collected per result

	members := []domain.MemberRecord{}
	var errs []error
	var oldest time.Time
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		members = append(members, res.members...)
		if oldest.IsZero() || res.fetchedAt.Before(oldest) {
			oldest = res.fetchedAt
		}
	}
	if len(errs) == len(chambers) {
		renderError(w, r, errors.Join(errs...), http.StatusBadGateway)
		return
	}

	member.SortByLastName(members)
	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"count":     len(members),
		"fetchedAt": fetchedAt(oldest),
		"summary":   member.Summarize(members),
		"members":   members,
	})
}

// committeeSummary counts committees by kind and chamber
type committeeSummary struct {
	Total       int `json:"total"`
	Standing    int `json:"standing"`
	NonStanding int `json:"nonStanding"`
	House       int `json:"house"`
	Senate      int `json:"senate"`
	Joint       int `json:"joint"`
}

// committeesHandler passes the active committees list through with summary counts.
// GET /api/v1/committees
func (s *Server) committeesHandler(w http.ResponseWriter, r *http.Request) {
	url := s.urls.Committees()
	doc, err := s.fetcher.Fetch(r.Context(), url, domain.KindCommittees)
	if err != nil {
		log.Printf("[WARN] failed to fetch committees: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	var raw []json.RawMessage
	if err = json.Unmarshal([]byte(doc.Body), &raw); err != nil {
		log.Printf("[WARN] failed to decode committees from %s: %v", url, err)
		renderError(w, r, fmt.Errorf("decode committees: %w", err), http.StatusBadGateway)
		return
	}

	summary := committeeSummary{Total: len(raw)}
	for _, item := range raw {
		var c domain.Committee
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		if c.NonStanding {
			summary.NonStanding++
		} else {
			summary.Standing++
		}
		switch c.ChamberCode {
		case "H":
			summary.House++
		case "S":
			summary.Senate++
		case "N":
			summary.Joint++
		}
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":    true,
		"count":      len(raw),
		"fetchedAt":  fetchedAt(doc.FetchedAt),
		"summary":    summary,
		"committees": raw,
	})
}

func healthOnly(entries []domain.FeedEntry) []domain.FeedEntry {
	res := make([]domain.FeedEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsHealthRelated {
			res = append(res, e)
		}
	}
	return res
}

