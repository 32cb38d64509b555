package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type debugSink struct{ lines []string }

func (d *debugSink) Debugf(format string, _ ...any) { d.lines = append(d.lines, format) }

func TestNewHTTPClientSetsAgentAndCookie(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	cookieFile := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookieFile, []byte("\n  session=abc  \nignored=1\n"), 0o644))

	log := &debugSink{}
	c, err := NewHTTPClient(HTTPClientOptions{
		Timeout:     5 * time.Second,
		UserAgent:   "novelfetch-test",
		Cookie:      "a=1",
		CookieFile:  cookieFile,
		DebugLogger: log,
	})
	require.NoError(t, err)

	resp, err := c.Get(srv.URL + "/x")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "novelfetch-test", got.Get("User-Agent"))
	assert.Equal(t, "a=1; session=abc", got.Get("Cookie"))
	assert.Contains(t, log.lines, "HTTP %s %s")
}

func TestRoundTripperKeepsCallerHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	c, err := NewHTTPClient(HTTPClientOptions{UserAgent: "default-ua", Cookie: "a=1"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "mine")
	req.Header.Set("Cookie", "b=2")

	resp, err := c.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "mine", got.Get("User-Agent"))
	assert.Equal(t, "b=2", got.Get("Cookie"))
}

func TestJoinCookies(t *testing.T) {
	assert.Equal(t, "", joinCookies("", ""))
	assert.Equal(t, "a=1", joinCookies(" a=1 ", "/does/not/exist"))

	f := filepath.Join(t.TempDir(), "c.txt")
	require.NoError(t, os.WriteFile(f, []byte("x=9\n"), 0o644))
	assert.Equal(t, "x=9", joinCookies("", f))
}

func TestPickUserAgent(t *testing.T) {
	assert.Equal(t, "custom", PickUserAgent("custom"))
	assert.Equal(t, defaultUserAgent, PickUserAgent(""))
}

func TestRateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c, err := NewHTTPClient(HTTPClientOptions{RateLimit: 0.001})
	require.NoError(t, err)

	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = c.Do(req)
	assert.Error(t, err)
	assert.Nil(t, newLimiter(0))
}
