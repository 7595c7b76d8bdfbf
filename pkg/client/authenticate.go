package client

import (
	"errors"
	"net/url"
)

// AuthorizeParams are the query parameters of the CORE_AUTH authorize page.
// At least one of RedirectURL and PostbackURL is required.
type AuthorizeParams struct {
	RedirectURL string
	PostbackURL string
	State       string
}

// AuthenticateURL builds the browser URL that starts a CORE_AUTH login.
func (c *CoreAuthClient) AuthenticateURL(p AuthorizeParams) (string, error) {
	if p.RedirectURL == "" && p.PostbackURL == "" {
		return "", errors.New("either a redirect URL or a postback URL is required")
	}

	endpoint, err := c.endpoint(authenticatePath)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}

	q := u.Query()
	if p.RedirectURL != "" {
		q.Set("redirectUrl", p.RedirectURL)
	}
	if p.PostbackURL != "" {
		q.Set("postbackUrl", p.PostbackURL)
	}
	if p.State != "" {
		q.Set("state", p.State)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
