package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReportFormat pins the exact report bytes, misspelled label included.
func TestReportFormat(t *testing.T) {
	t.Parallel()

	info := Info{
		Package:           "demo-pkg",
		CommitSHA:         "abc1234",
		CommitDescription: "v1.2.0-3-gabc1234",
	}

	var buf bytes.Buffer
	require.NoError(t, info.Report(&buf))

	expected := "package demo-pkg\n" +
		"git sha = abc1234\n" +
		"git decription = v1.2.0-3-gabc1234\n"
	require.Equal(t, expected, buf.String())
}

// TestReportEmptyFields ensures the report keeps its three-line shape
// even when every field is empty.
func TestReportEmptyFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Info{}.Report(&buf))

	require.Equal(t, "package \ngit sha = \ngit decription = \n", buf.String())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
}

// TestReportIdempotent verifies repeated calls produce identical output.
func TestReportIdempotent(t *testing.T) {
	t.Parallel()

	info := Current()

	var first, second bytes.Buffer
	require.NoError(t, info.Report(&first))
	require.NoError(t, info.Report(&second))
	require.Equal(t, first.String(), second.String())
}

// TestCurrent checks the snapshot reflects the package-level variables.
func TestCurrent(t *testing.T) {
	t.Parallel()

	info := Current()
	require.Equal(t, Package, info.Package)
	require.Equal(t, CommitSHA, info.CommitSHA)
	require.Equal(t, CommitDescription, info.CommitDescription)

	require.NotEmpty(t, info.String())
	require.Contains(t, info.String(), info.Package)
}
