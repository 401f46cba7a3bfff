package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/legiscope/pkg/config"
	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/health"
	"github.com/umputun/legiscope/pkg/member"
	"github.com/umputun/legiscope/server/mocks"
)

var testFetchedAt = time.Date(2025, 3, 4, 10, 20, 30, 0, time.UTC)

func testConfig(listen, strategy string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return listen, 30 * time.Second },
		GetSourceConfigFunc: func() config.SourceConfig {
			return config.SourceConfig{BaseURL: "https://www.ncleg.gov", WebServicesURL: "https://webservices.ncleg.gov",
				SessionYear: "2025"}
		},
		GetMembersStrategyFunc: func() string { return strategy },
		GetPublicURLFunc:       func() string { return "http://localhost:8080" },
	}
}

// fetcherFor returns a fetcher serving bodies by url, unknown urls fail with a gateway-like error
func fetcherFor(docs map[string]string) *mocks.FetcherMock {
	return &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, error) {
			body, ok := docs[url]
			if !ok {
				return domain.Document{}, fmt.Errorf("fetch %s: unexpected status code: 503", url)
			}
			return domain.Document{URL: url, Kind: kind, Body: body, FetchedAt: testFetchedAt}, nil
		},
	}
}

func serve(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(":8080", "table"), &mocks.FetcherMock{}, Params{Version: "1.0.0"})
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.Equal(t, member.TableStrategy, srv.strategy)
	assert.Equal(t, "2025", srv.urls.SessionYear)
	assert.Equal(t, "https://webservices.ncleg.gov", srv.urls.WebServices)

	t.Run("unknown strategy falls back to block", func(t *testing.T) {
		srv := New(testConfig(":8080", "auto"), &mocks.FetcherMock{}, Params{})
		assert.Equal(t, member.BlockStrategy, srv.strategy)
	})
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port), "block"), &mocks.FetcherMock{}, Params{Version: "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, time.Second, 10*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "legiscope", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Status(t *testing.T) {
	t.Run("with cache stats", func(t *testing.T) {
		stats := &mocks.CacheStatsMock{StatsFunc: func(ctx context.Context) (map[domain.DocumentKind]int, error) {
			return map[domain.DocumentKind]int{domain.KindFeed: 3, domain.KindBill: 1}, nil
		}}
		srv := New(testConfig(":8080", "block"), &mocks.FetcherMock{}, Params{CacheStats: stats, Version: "v1"})

		rec := serve(t, srv, "/api/v1/status")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "v1", resp["version"])
		assert.Equal(t, "2025", resp["session_year"])
		assert.Equal(t, "block", resp["strategy"])
		keywords := resp["health_keywords"].(map[string]any)
		assert.Equal(t, health.KeywordsVersion, keywords["version"])
		assert.Equal(t, float64(len(health.Keywords())), keywords["count"])
		assert.Equal(t, map[string]any{"feed": 3.0, "bill": 1.0}, resp["cache"])
		assert.Len(t, stats.StatsCalls(), 1)
	})

	t.Run("stats error is not fatal", func(t *testing.T) {
		stats := &mocks.CacheStatsMock{StatsFunc: func(ctx context.Context) (map[domain.DocumentKind]int, error) {
			return nil, errors.New("db closed")
		}}
		srv := New(testConfig(":8080", "block"), &mocks.FetcherMock{}, Params{CacheStats: stats})

		rec := serve(t, srv, "/api/v1/status")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.NotContains(t, resp, "cache")
	})
}

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()
	renderError(rec, nil, errors.New("boom"), http.StatusBadGateway, map[string]any{"feed": "all"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"boom","feed":"all"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	renderError(rec, nil, nil, http.StatusInternalServerError)
	assert.JSONEq(t, `{"success":false,"error":"unknown error"}`, rec.Body.String())
}
