package client_test

import (
	"net/url"

	"github.com/guidewire/core-auth-examples/pkg/client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthenticateURL", func() {
	coreAuthClient := client.New(client.WithBaseURL("http://localhost:3000"))

	It("should encode the redirect, postback and state parameters", func() {
		raw, err := coreAuthClient.AuthenticateURL(client.AuthorizeParams{
			RedirectURL: "http://localhost:5000/callback",
			PostbackURL: "http://localhost:5000/postback",
			State:       "demo-state",
		})
		Expect(err).NotTo(HaveOccurred())

		u, err := url.Parse(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Host).To(Equal("localhost:3000"))
		Expect(u.Path).To(Equal("/authenticate"))
		Expect(u.Query().Get("redirectUrl")).To(Equal("http://localhost:5000/callback"))
		Expect(u.Query().Get("postbackUrl")).To(Equal("http://localhost:5000/postback"))
		Expect(u.Query().Get("state")).To(Equal("demo-state"))
	})

	It("should keep a base path", func() {
		prefixed := client.New(client.WithBaseURL("https://example.com/core-auth/"))
		raw, err := prefixed.AuthenticateURL(client.AuthorizeParams{RedirectURL: "https://app.example.com/cb"})
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(HavePrefix("https://example.com/core-auth/authenticate?"))
	})

	It("should require a redirect or postback URL", func() {
		_, err := coreAuthClient.AuthenticateURL(client.AuthorizeParams{State: "demo-state"})
		Expect(err).To(HaveOccurred())
	})
})
