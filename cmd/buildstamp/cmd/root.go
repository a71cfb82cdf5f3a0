package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/buildstamp/internal/config"
	"github.com/oshokin/buildstamp/internal/logger"
	"github.com/oshokin/buildstamp/internal/service/report"
)

// rootCmd prints the build version report. Flag parsing is disabled and any
// arguments are accepted so that every invocation, whatever it passes,
// produces the identical three lines on stdout.
var rootCmd = &cobra.Command{
	Use:   "buildstamp",
	Short: "Print build version metadata.",
	Long: `Prints the package name, git commit SHA and git description that were
embedded into the binary at build time.

Command-line arguments are ignored: every invocation prints the same three
lines and exits with status 0. A packaging pipeline may override the values
with a YAML stamp file, found via the BUILDSTAMP_STAMP_FILE environment
variable or as buildstamp.yaml in the working directory. Diagnostics go to
stderr and are controlled by BUILDSTAMP_LOG_LEVEL.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, _ []string) {
		options := &report.Options{
			Output: cmd.OutOrStdout(),
		}

		// Write failures are diagnostic only, the exit status stays 0.
		if err := report.Run(cmd.Context(), options); err != nil {
			logger.Error(cmd.Context(), "Failed to write version report:", err.Error())
		}
	},
}

// Execute runs the buildstamp CLI. The process exits 0 regardless of the
// outcome: the report is best-effort diagnostic output and must never fail
// the caller.
func Execute() {
	ctx := context.Background()

	if level, ok := logger.ParseLogLevel(os.Getenv(config.EnvLogLevel)); ok {
		logger.SetLevel(level)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error(ctx, "Command failed:", err.Error())
	}
}
