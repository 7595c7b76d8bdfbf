package client

import (
	"context"
	"net/http"
)

type verifyRequest struct {
	Token string `json:"token"`
}

// Verify posts the token to CORE_AUTH and returns whatever it answered,
// including non-2xx statuses. Only transport and decoding failures are errors.
func (c *CoreAuthClient) Verify(ctx context.Context, token string) (*Response, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	return c.do(ctx, http.MethodPost, verifyPath, verifyRequest{Token: token})
}

// VerifyToken is Verify with non-2xx answers reported as *HTTPError.
func (c *CoreAuthClient) VerifyToken(ctx context.Context, token string) (Document, error) {
	res, err := c.Verify(ctx, token)
	return expectOK("verify", res, err)
}
