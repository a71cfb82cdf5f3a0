package version

import (
	"fmt"
	"io"
)

var (
	// Package is the name of the distributed artifact. It can be overridden via ldflags.
	Package = "buildstamp"
	// CommitSHA is the git commit hash embedded at build time (or "none").
	CommitSHA = "none"
	// CommitDescription is the `git describe` output embedded at build time.
	CommitDescription = "unknown"
)

// Info is an immutable snapshot of the build metadata identifying the running binary.
type Info struct {
	// Package is the distributed artifact's name.
	Package string
	// CommitSHA is the source-control commit identifier pinned into the build.
	CommitSHA string
	// CommitDescription is the human-readable source-control label
	// (e.g. nearest tag plus commit distance).
	CommitDescription string
}

// Current returns the build metadata compiled into this binary.
func Current() Info {
	return Info{
		Package:           Package,
		CommitSHA:         CommitSHA,
		CommitDescription: CommitDescription,
	}
}

// Report writes the three-line version report to w.
// The "decription" label is intentional: consumers match the historical
// output byte for byte, so the misspelling stays.
func (i Info) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "package %s\n", i.Package); err != nil {
		return fmt.Errorf("write package line: %w", err)
	}

	if _, err := fmt.Fprintf(w, "git sha = %s\n", i.CommitSHA); err != nil {
		return fmt.Errorf("write sha line: %w", err)
	}

	if _, err := fmt.Fprintf(w, "git decription = %s\n", i.CommitDescription); err != nil {
		return fmt.Errorf("write description line: %w", err)
	}

	return nil
}

// String renders a single-line form of the metadata for logs.
func (i Info) String() string {
	return fmt.Sprintf("package: %s, commit: %s, description: %s",
		i.Package, i.CommitSHA, i.CommitDescription)
}
