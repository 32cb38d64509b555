package fetch

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Init carries the caller's request options.
type Init struct {
	Method  string
	Headers http.Header
	Body    []byte
}

type Client struct {
	http *http.Client
	log  interface {
		Debugf(string, ...any)
	}
}

func NewClient(c *http.Client, log interface{ Debugf(string, ...any) }) *Client {
	if c == nil {
		c = http.DefaultClient
	}
	return &Client{http: c, log: log}
}

func (c *Client) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}

// FetchText fetches url and decodes the body from the given charset label.
// Any failure yields an empty payload.
func (c *Client) FetchText(ctx context.Context, url string, init *Init, encoding string) Payload {
	body, err := c.fetchBytes(ctx, url, init)
	if err != nil {
		c.debugf("fetch text %s: %v", url, err)
		return Empty()
	}

	text, err := decodeCharset(body, encoding)
	if err != nil {
		c.debugf("fetch text %s: %v", url, err)
		return Empty()
	}

	return Ok(text)
}

// FetchFile fetches url and returns the body as standard base64.
// Any failure yields an empty payload.
func (c *Client) FetchFile(ctx context.Context, url string, init *Init) Payload {
	body, err := c.fetchBytes(ctx, url, init)
	if err != nil {
		c.debugf("fetch file %s: %v", url, err)
		return Empty()
	}

	return Ok(base64.StdEncoding.EncodeToString(body))
}

func (c *Client) fetchBytes(ctx context.Context, url string, init *Init) ([]byte, error) {
	resp, err := c.do(ctx, url, init, http.MethodGet)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return readBody(resp)
}

func (c *Client) do(ctx context.Context, url string, init *Init, method string) (*http.Response, error) {
	var (
		headers http.Header
		body    io.Reader
	)
	if init != nil {
		if init.Method != "" {
			method = init.Method
		}
		headers = init.Headers
		if init.Body != nil {
			body = bytes.NewReader(init.Body)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header = MergeDefaults(headers)

	c.debugf("%s %s", method, url)

	return c.http.Do(req)
}

// readBody undoes the Content-Encoding. The transport leaves compressed
// bodies alone because Accept-Encoding is always set explicitly.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip decode: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		reader = gz
	case "deflate":
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		// Most servers send zlib-wrapped data under "deflate"; some send raw.
		if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
			defer func() {
				_ = zr.Close()
			}()
			reader = zr
		} else {
			reader = flate.NewReader(bytes.NewReader(raw))
		}
	case "br":
		reader = brotli.NewReader(resp.Body)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return data, nil
}

func decodeCharset(body []byte, label string) (string, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" || label == "utf-8" || label == "utf8" {
		return string(body), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", label, err)
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", label, err)
	}

	return string(out), nil
}
