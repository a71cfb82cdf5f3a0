// Package version exposes build metadata for the buildstamp binary.
//
// Variables Package, CommitSHA, and CommitDescription are injected at build
// time via Go ldflags and default to sensible values for local builds:
//
//	go build -ldflags "-X github.com/oshokin/buildstamp/internal/version.Package=demo-pkg \
//	                   -X github.com/oshokin/buildstamp/internal/version.CommitSHA=abc1234 \
//	                   -X github.com/oshokin/buildstamp/internal/version.CommitDescription=v1.2.0-3-gabc1234"
//
// Info snapshots the variables; Info.Report renders the fixed three-line
// report that downstream tooling parses.
package version
