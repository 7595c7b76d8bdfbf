package client

import (
	"context"
	"net/http"
)

// FetchJWKS downloads the JSON Web Key Set published by CORE_AUTH. Any
// non-2xx answer is reported as *HTTPError.
func (c *CoreAuthClient) FetchJWKS(ctx context.Context) (Document, error) {
	res, err := c.do(ctx, http.MethodGet, jwksPath, nil)
	return expectOK("jwks fetch", res, err)
}
