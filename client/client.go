// run-samples smoke-tests a CORE_AUTH deployment: it fetches the JWKS and
// verifies a token given as argument or through CORE_AUTH_SAMPLE_TOKEN.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/guidewire/core-auth-examples/config"
	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/guidewire/core-auth-examples/pkg/runner"
	"github.com/guidewire/core-auth-examples/pkg/utils"
)

func newRootCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "run-samples [token]",
		Short: "Fetch the CORE_AUTH JWKS and verify a sample token",
		Long: `run-samples fetches /.well-known/jwks.json from CORE_AUTH and prints it.
When a token is passed as argument, or set in CORE_AUTH_SAMPLE_TOKEN, it is
posted to /verify and the response is printed as well.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.CoreAuth.BaseURL = baseURL
			}

			token := cfg.CoreAuth.SampleToken
			if len(args) > 0 {
				token = args[0]
			}

			coreAuth := client.New(
				client.WithBaseURL(cfg.CoreAuth.BaseURL),
				client.WithTimeout(cfg.CoreAuth.Timeout),
				client.WithUserAgent("core-auth-examples/run-samples"),
			)
			log := utils.NewConsoleLoggerService(cmd.ErrOrStderr())
			return runner.New(coreAuth, cmd.OutOrStdout(), cmd.ErrOrStderr(), log).Run(cmd.Context(), token)
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "CORE_AUTH base URL (overrides CORE_AUTH_BASE_URL)")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, runner.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
