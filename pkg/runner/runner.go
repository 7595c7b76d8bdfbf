package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/guidewire/core-auth-examples/pkg/auth"
	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/guidewire/core-auth-examples/pkg/utils"
)

// ErrReported marks failures the runner already printed.
var ErrReported = errors.New("sample run failed")

// CoreAuth is the part of the CORE_AUTH client the samples exercise.
type CoreAuth interface {
	FetchJWKS(ctx context.Context) (client.Document, error)
	VerifyToken(ctx context.Context, token string) (client.Document, error)
}

// Runner fetches the JWKS and, when a token is available, verifies it,
// printing every answer.
type Runner struct {
	coreAuth CoreAuth
	out      io.Writer
	errOut   io.Writer
	log      utils.Logger
}

func New(coreAuth CoreAuth, out, errOut io.Writer, log utils.Logger) *Runner {
	return &Runner{
		coreAuth: coreAuth,
		out:      out,
		errOut:   errOut,
		log:      log,
	}
}

// Run returns nil when no token is given; the JWKS step still runs.
func (r *Runner) Run(ctx context.Context, token string) error {
	jwks, err := r.coreAuth.FetchJWKS(ctx)
	if err != nil {
		fmt.Fprintf(r.errOut, "Failed to fetch JWKS: %s\n", err)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	r.print("Fetched JWKS:", jwks)
	r.printKeys(jwks)

	if token == "" {
		fmt.Fprintln(r.out, "No token provided. Pass one as an argument or set CORE_AUTH_SAMPLE_TOKEN.")
		return nil
	}

	verification, err := r.coreAuth.VerifyToken(ctx, token)
	if err != nil {
		fmt.Fprintf(r.errOut, "Failed to verify token: %s\n", err)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	r.print("Verification response:", verification)

	return nil
}

func (r *Runner) print(title string, doc client.Document) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintln(r.out, title, doc)
		return
	}
	fmt.Fprintln(r.out, title, string(data))
}

// printKeys is informational only; a JWKS it cannot parse is still a
// successful fetch.
func (r *Runner) printKeys(jwks client.Document) {
	keys, err := auth.SummarizeKeys(jwks)
	if err != nil {
		r.log.Warn("could not summarize JWKS: " + err.Error())
		return
	}
	fmt.Fprintf(r.out, "Keys (%d):\n", len(keys))
	for _, k := range keys {
		fmt.Fprintln(r.out, "  "+k.String())
	}
}
