package client

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultTimeout = 5 * time.Second

	jwksPath         = "/.well-known/jwks.json"
	verifyPath       = "/verify"
	authenticatePath = "/authenticate"
)

// CoreAuthClient talks to the CORE_AUTH service. It never validates tokens
// itself; every answer is handed back as decoded JSON.
type CoreAuthClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type ClientOption func(*CoreAuthClient)

func New(options ...ClientOption) *CoreAuthClient {
	c := &CoreAuthClient{
		httpClient: cleanhttp.DefaultPooledClient(),
		baseURL:    DefaultBaseURL,
	}
	c.httpClient.Timeout = DefaultTimeout

	for _, o := range options {
		o(c)
	}

	return c
}

// WithHTTPClient replaces the pooled client. A nil client is ignored.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *CoreAuthClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *CoreAuthClient) {
		c.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *CoreAuthClient) {
		c.httpClient.Timeout = timeout
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *CoreAuthClient) {
		c.userAgent = userAgent
	}
}

func (c *CoreAuthClient) BaseURL() string {
	return c.baseURL
}

func (c *CoreAuthClient) Timeout() time.Duration {
	return c.httpClient.Timeout
}
