// Package source fetches raw documents from the legislature site and keeps them in an optional cache.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/legiscope/pkg/domain"
)

//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// DefaultUserAgent is sent when Params.UserAgent is empty
const DefaultUserAgent = "Mozilla/5.0 (compatible; Legiscope/1.0)"

// maxBodySize limits a single document, member list pages are the largest at about 1MB
const maxBodySize = 16 << 20

// DefaultTTL is the freshness window of cached documents per kind
var DefaultTTL = map[domain.DocumentKind]time.Duration{
	domain.KindFeed:       5 * time.Minute,
	domain.KindBill:       10 * time.Minute,
	domain.KindDigest:     10 * time.Minute,
	domain.KindMembers:    24 * time.Hour,
	domain.KindCommittees: time.Hour,
}

// errPermanent marks fetch errors which can't be fixed by retrying
var errPermanent = errors.New("permanent fetch error")

// Cache stores fetched documents keyed by url
type Cache interface {
	Get(ctx context.Context, url string) (doc domain.Document, found bool, err error)
	Put(ctx context.Context, doc domain.Document) error
}

// Params configures Client
type Params struct {
	UserAgent  string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	TTL        map[domain.DocumentKind]time.Duration // missing kinds use DefaultTTL, zero disables caching
	Cache      Cache                                 // optional
}

// Client fetches source documents over http with retries and caching
type Client struct {
	params Params
	client *http.Client
	now    func() time.Time
}

// StatusError is returned for non-200 responses
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Is reports client errors (4xx) as permanent, server errors are retried
func (e *StatusError) Is(target error) bool {
	return target == errPermanent && e.Code < http.StatusInternalServerError
}

// New makes Client with defaults for empty params
func New(params Params) *Client {
	if params.UserAgent == "" {
		params.UserAgent = DefaultUserAgent
	}
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	if params.Retries <= 0 {
		params.Retries = 1
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 500 * time.Millisecond
	}
	ttl := make(map[domain.DocumentKind]time.Duration, len(DefaultTTL))
	for k, v := range DefaultTTL {
		ttl[k] = v
	}
	for k, v := range params.TTL {
		ttl[k] = v
	}
	params.TTL = ttl

	return &Client{
		params: params,
		client: &http.Client{Timeout: params.Timeout},
		now:    time.Now,
	}
}

// Fetch returns the document at url, from cache if it is fresh enough for its kind.
// Network errors and 5xx responses are retried, 4xx fails immediately.
func (c *Client) Fetch(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, error) {
	if doc, ok := c.cached(ctx, url, kind); ok {
		return doc, nil
	}

	var body string
	retrier := repeater.NewBackoff(c.params.Retries, c.params.RetryDelay, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		b, err := c.get(ctx, url, kind)
		if err != nil {
			lgr.Printf("[DEBUG] fetch %s failed: %v", url, err)
			return err
		}
		body = b
		return nil
	}, errPermanent)
	if err != nil {
		return domain.Document{}, fmt.Errorf("fetch %s: %w", url, err)
	}

	doc := domain.Document{URL: url, Kind: kind, Body: body, FetchedAt: c.now().UTC()}
	c.store(ctx, doc)
	return doc, nil
}

// Refresh fetches the document bypassing the cache lookup and stores the result
func (c *Client) Refresh(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, error) {
	params := c.params
	params.Cache = nil
	direct := &Client{params: params, client: c.client, now: c.now}
	doc, err := direct.Fetch(ctx, url, kind)
	if err != nil {
		return domain.Document{}, err
	}
	c.store(ctx, doc)
	return doc, nil
}

func (c *Client) get(ctx context.Context, url string, kind domain.DocumentKind) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", errors.Join(err, errPermanent))
	}
	req.Header.Set("User-Agent", c.params.UserAgent)
	addBrowserHeaders(req, kind)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", &StatusError{Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}

// cached returns a fresh cached document, cache errors are logged and treated as a miss
func (c *Client) cached(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, bool) {
	ttl := c.params.TTL[kind]
	if c.params.Cache == nil || ttl <= 0 {
		return domain.Document{}, false
	}
	doc, found, err := c.params.Cache.Get(ctx, url)
	if err != nil {
		lgr.Printf("[WARN] failed to read cached %s: %v", url, err)
		return domain.Document{}, false
	}
	if !found || c.now().Sub(doc.FetchedAt) >= ttl {
		return domain.Document{}, false
	}
	lgr.Printf("[DEBUG] cache hit %s, fetched at %s", url, doc.FetchedAt.Format(time.RFC3339))
	return doc, true
}

func (c *Client) store(ctx context.Context, doc domain.Document) {
	if c.params.Cache == nil || c.params.TTL[doc.Kind] <= 0 {
		return
	}
	if err := c.params.Cache.Put(ctx, doc); err != nil {
		lgr.Printf("[WARN] failed to cache %s: %v", doc.URL, err)
	}
}
