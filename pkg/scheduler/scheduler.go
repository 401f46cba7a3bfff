// Package scheduler keeps the document cache warm by refreshing frequently used source documents
// in the background.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/feed"
	"github.com/umputun/legiscope/pkg/health"
	"github.com/umputun/legiscope/pkg/source"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/purger.go -pkg mocks -skip-ensure -fmt goimports . Purger

// Fetcher fetches a document bypassing the cache and stores it
type Fetcher interface {
	Refresh(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, error)
}

// Purger removes cached documents fetched before the given time
type Purger interface {
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}

// Params holds scheduler dependencies and settings
type Params struct {
	Fetcher    Fetcher
	Purger     Purger // optional, no purging if nil
	URLs       source.URLs
	Feeds      []string // feed kinds to refresh
	Members    bool     // refresh both member lists
	Interval   time.Duration
	MaxWorkers int
	Retention  time.Duration // purge documents older than this, 0 disables purging
}

// Scheduler refreshes cached documents periodically
type Scheduler struct {
	fetcher    Fetcher
	purger     Purger
	urls       source.URLs
	feeds      []string
	members    bool
	interval   time.Duration
	maxWorkers int
	retention  time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Stats summarizes one warm-up run
type Stats struct {
	Refreshed int
	Failed    int
	Purged    int64
}

// target is a single document to refresh
type target struct {
	url  string
	kind domain.DocumentKind
	name string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Interval == 0 {
		params.Interval = 15 * time.Minute
	}
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 4
	}
	if len(params.Feeds) == 0 {
		params.Feeds = []string{"all"}
	}
	return &Scheduler{
		fetcher:    params.Fetcher,
		purger:     params.Purger,
		urls:       params.URLs,
		feeds:      params.Feeds,
		members:    params.Members,
		interval:   params.Interval,
		maxWorkers: params.MaxWorkers,
		retention:  params.Retention,
	}
}

// Start runs the warm-up immediately and then on every interval until Stop or ctx is done
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.Warm(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Warm(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] cache warmer started with interval %v, feeds %v, members %v", s.interval, s.feeds, s.members)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping cache warmer...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] cache warmer stopped")
}

// Warm refreshes all targets concurrently and purges expired documents.
// Failures are logged and counted, they never stop the run.
func (s *Scheduler) Warm(ctx context.Context) Stats {
	targets := s.targets()
	lgr.Printf("[DEBUG] warming %d documents", len(targets))

	var refreshed, failed int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, t := range targets {
		g.Go(func() error {
			if err := s.refresh(gctx, t); err != nil {
				lgr.Printf("[WARN] failed to refresh %s: %v", t.name, err)
				atomic.AddInt32(&failed, 1)
				return nil
			}
			atomic.AddInt32(&refreshed, 1)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	stats := Stats{Refreshed: int(refreshed), Failed: int(failed)}
	if s.purger != nil && s.retention > 0 && ctx.Err() == nil {
		purged, err := s.purger.Purge(ctx, time.Now().Add(-s.retention))
		if err != nil {
			lgr.Printf("[WARN] failed to purge cached documents: %v", err)
		}
		stats.Purged = purged
	}
	lgr.Printf("[INFO] cache warm-up completed, refreshed %d, failed %d, purged %d",
		stats.Refreshed, stats.Failed, stats.Purged)
	return stats
}

func (s *Scheduler) refresh(ctx context.Context, t target) error {
	doc, err := s.fetcher.Refresh(ctx, t.url, t.kind)
	if err != nil {
		return err
	}
	if t.kind == domain.KindFeed {
		entries := feed.ParseFeed(doc.Body)
		healthCount := 0
		for _, e := range entries {
			if e.IsHealthRelated {
				healthCount++
			}
		}
		lgr.Printf("[DEBUG] %s: %d bills, %d health related (keywords %s)",
			t.name, len(entries), healthCount, health.KeywordsVersion)
	}
	return nil
}

// targets lists documents to refresh, feeds first
func (s *Scheduler) targets() []target {
	res := make([]target, 0, len(s.feeds)+3)
	seen := map[string]bool{}
	for _, kind := range s.feeds {
		u := s.urls.Feed(source.FeedRequest{Kind: kind})
		if seen[u] {
			continue
		}
		seen[u] = true
		res = append(res, target{url: u, kind: domain.KindFeed, name: "feed " + kind})
	}
	if s.members {
		for _, ch := range []domain.Chamber{domain.House, domain.Senate} {
			res = append(res, target{url: s.urls.MemberList(ch), kind: domain.KindMembers, name: "members " + ch.Code()})
		}
		res = append(res, target{url: s.urls.Committees(), kind: domain.KindCommittees, name: "committees"})
	}
	return res
}
