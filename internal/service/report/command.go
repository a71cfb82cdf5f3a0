package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/oshokin/buildstamp/internal/config"
	"github.com/oshokin/buildstamp/internal/logger"
	"github.com/oshokin/buildstamp/internal/version"
)

// Options controls where the report reads its stamp from and where it goes.
type Options struct {
	// StampPath is an optional explicit path to a stamp YAML file.
	// When empty, the BUILDSTAMP_STAMP_FILE environment variable and then
	// the default stamp filename are tried.
	StampPath string
	// Output is the destination stream. Defaults to os.Stdout.
	Output io.Writer
}

// Run resolves the build metadata and writes the three-line version report.
// Stamp-file problems degrade to the compiled-in values; the only error
// returned is a failed write to the output stream.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "report")

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	info := resolve(ctx, opts.StampPath)

	if err := info.Report(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// resolve starts from the metadata compiled into the binary and overlays a
// stamp file when one is present. A missing file at the default location is
// the normal case and stays silent; anything else wrong with the stamp is
// logged and ignored so the process still reports and exits cleanly.
func resolve(ctx context.Context, explicit string) version.Info {
	info := version.Current()

	path, expected := stampPath(explicit)

	stamp, err := config.Load(path)
	if err != nil {
		if expected || !errors.Is(err, fs.ErrNotExist) {
			logger.WarnKV(ctx, "Ignoring build stamp file", "path", path, "error", err)
		}

		return info
	}

	logger.DebugKV(ctx, "Applying build stamp file", "path", path)

	return overlay(info, stamp)
}

// stampPath picks the stamp file location. The second return value reports
// whether the caller asked for this path explicitly, in which case a missing
// file is worth a warning.
func stampPath(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}

	if fromEnv := os.Getenv(config.EnvStampFile); fromEnv != "" {
		return fromEnv, true
	}

	return config.DefaultStampFilename, false
}

// overlay copies non-empty stamp fields over the compiled-in metadata.
func overlay(info version.Info, stamp *config.Stamp) version.Info {
	if stamp.Package != "" {
		info.Package = stamp.Package
	}

	if stamp.GitSHA != "" {
		info.CommitSHA = stamp.GitSHA
	}

	if stamp.GitDescription != "" {
		info.CommitDescription = stamp.GitDescription
	}

	return info
}
