package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/buildstamp/internal/config"
	"github.com/oshokin/buildstamp/internal/version"
)

// compiledInReport is the report produced from ldflags defaults alone.
func compiledInReport() string {
	return fmt.Sprintf("package %s\ngit sha = %s\ngit decription = %s\n",
		version.Package, version.CommitSHA, version.CommitDescription)
}

// TestRunWithoutStamp verifies the compiled-in values are reported when no
// stamp file exists anywhere.
func TestRunWithoutStamp(t *testing.T) {
	t.Setenv(config.EnvStampFile, "")

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{Output: &buf}))
	require.Equal(t, compiledInReport(), buf.String())
}

// TestRunWithStampOverride verifies non-empty stamp fields replace the
// compiled-in values while empty ones are kept.
func TestRunWithStampOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "buildstamp.yaml")
	require.NoError(t, config.Save(path, &config.Stamp{
		Package: "demo-pkg",
		GitSHA:  "abc1234",
	}))

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{StampPath: path, Output: &buf}))

	expected := fmt.Sprintf("package demo-pkg\ngit sha = abc1234\ngit decription = %s\n",
		version.CommitDescription)
	require.Equal(t, expected, buf.String())
}

// TestRunWithStampFromEnvironment verifies the BUILDSTAMP_STAMP_FILE lookup.
func TestRunWithStampFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildstamp.yaml")
	require.NoError(t, config.Save(path, &config.Stamp{
		Package:        "demo-pkg",
		GitSHA:         "abc1234",
		GitDescription: "v1.2.0-3-gabc1234",
	}))

	t.Setenv(config.EnvStampFile, path)

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{Output: &buf}))

	expected := "package demo-pkg\n" +
		"git sha = abc1234\n" +
		"git decription = v1.2.0-3-gabc1234\n"
	require.Equal(t, expected, buf.String())
}

// TestRunIgnoresBrokenStamp verifies an unreadable or malformed stamp file
// never fails the run.
func TestRunIgnoresBrokenStamp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Points at a file that does not exist.
	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{
		StampPath: filepath.Join(dir, "missing.yaml"),
		Output:    &buf,
	}))
	require.Equal(t, compiledInReport(), buf.String())

	// Points at garbage.
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("{not yaml: [::"), config.DefaultFilePermissions))

	buf.Reset()
	require.NoError(t, Run(context.Background(), &Options{StampPath: broken, Output: &buf}))
	require.Equal(t, compiledInReport(), buf.String())
}

// TestRunIdempotent verifies repeated runs print identical bytes.
func TestRunIdempotent(t *testing.T) {
	t.Setenv(config.EnvStampFile, "")

	var first, second bytes.Buffer
	require.NoError(t, Run(context.Background(), &Options{Output: &first}))
	require.NoError(t, Run(context.Background(), &Options{Output: &second}))
	require.Equal(t, first.String(), second.String())
}
