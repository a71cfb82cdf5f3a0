// Package report implements the buildstamp run: it resolves the build
// metadata (compiled-in values, optionally overlaid by a YAML stamp file)
// and writes the fixed three-line version report to the output stream.
package report
