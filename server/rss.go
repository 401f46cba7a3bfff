package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/feed"
	"github.com/umputun/legiscope/pkg/source"
)

// rssHandler serves health-related bills of a feed as RSS.
// Only the "health" topic is known, feed and chamber query params select the source feed.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	topic := r.PathValue("topic")
	if topic != "health" {
		http.Error(w, "Unknown topic", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	req := source.FeedRequest{Kind: q.Get("feed"), Chamber: strings.ToUpper(q.Get("chamber"))}
	doc, err := s.fetcher.Fetch(r.Context(), s.urls.Feed(req), domain.KindFeed)
	if err != nil {
		log.Printf("[ERROR] failed to fetch feed for RSS: %v", err)
		http.Error(w, "Failed to fetch source feed", http.StatusBadGateway)
		return
	}

	rss, err := s.generator.GenerateRSS(feed.ParseFeed(doc.Body), topic)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
