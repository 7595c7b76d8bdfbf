package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RequestIDHeader is forwarded on every call so the demo server and CORE_AUTH
// logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// Document is an arbitrary JSON object returned by CORE_AUTH.
type Document map[string]interface{}

// Response is a decoded CORE_AUTH answer kept together with its status.
type Response struct {
	StatusCode int
	Body       Document
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type requestIDKey struct{}

// WithRequestID returns a context whose outgoing CORE_AUTH calls carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (c *CoreAuthClient) endpoint(path string) (string, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	return u, nil
}

// do sends the request and decodes the JSON body whatever the status.
func (c *CoreAuthClient) do(ctx context.Context, method, path string, payload interface{}) (*Response, error) {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	out := &Response{StatusCode: res.StatusCode}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out.Body); err != nil {
		return out, fmt.Errorf("decoding %s response (status %d): %w", endpoint, res.StatusCode, err)
	}
	return out, nil
}

// expectOK turns a non-2xx answer into *HTTPError.
func expectOK(op string, res *Response, err error) (Document, error) {
	if res != nil && !res.OK() {
		return nil, &HTTPError{
			Op:         op,
			StatusCode: res.StatusCode,
			Status:     http.StatusText(res.StatusCode),
			Body:       res.Body,
		}
	}
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}
