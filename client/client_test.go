package main

import (
	"bytes"
	"errors"
	"net/http"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/guidewire/core-auth-examples/pkg/runner"
)

var _ = Describe("run-samples", func() {
	var (
		server *ghttp.Server
		out    *bytes.Buffer
		errOut *bytes.Buffer
	)

	execute := func(args ...string) error {
		cmd := newRootCmd()
		cmd.SetArgs(append([]string{"--base-url", server.URL()}, args...))
		cmd.SetOut(out)
		cmd.SetErr(errOut)
		return cmd.Execute()
	}

	BeforeEach(func() {
		server = ghttp.NewServer()
		out, errOut = &bytes.Buffer{}, &bytes.Buffer{}

		if prev, had := os.LookupEnv("CORE_AUTH_SAMPLE_TOKEN"); had {
			os.Unsetenv("CORE_AUTH_SAMPLE_TOKEN")
			DeferCleanup(os.Setenv, "CORE_AUTH_SAMPLE_TOKEN", prev)
		}

		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/.well-known/jwks.json"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]interface{}{"keys": []interface{}{}}),
			),
		)
	})

	AfterEach(func() {
		server.Close()
	})

	It("should succeed without a token", func() {
		Expect(execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("No token provided."))
	})

	It("should verify the positional token", func() {
		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/verify"),
				ghttp.VerifyJSON(`{"token":"from-arg"}`),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]bool{"valid": true}),
			),
		)

		Expect(execute("from-arg")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Verification response:"))
	})

	It("should fall back to CORE_AUTH_SAMPLE_TOKEN", func() {
		Expect(os.Setenv("CORE_AUTH_SAMPLE_TOKEN", "from-env")).To(Succeed())
		DeferCleanup(os.Unsetenv, "CORE_AUTH_SAMPLE_TOKEN")

		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyJSON(`{"token":"from-env"}`),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]bool{"valid": true}),
			),
		)

		Expect(execute()).To(Succeed())
		Expect(server.ReceivedRequests()).To(HaveLen(2))
	})

	It("should return a reported error when verification fails", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusBadGateway, nil))

		err := execute("T")
		Expect(errors.Is(err, runner.ErrReported)).To(BeTrue())
		Expect(errOut.String()).To(ContainSubstring("Failed to verify token: verify failed: 502"))
	})

	It("should reject more than one argument", func() {
		Expect(execute("a", "b")).To(HaveOccurred())
		Expect(server.ReceivedRequests()).To(BeEmpty())
	})
})
