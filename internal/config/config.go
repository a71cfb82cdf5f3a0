package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Stamp holds build metadata produced by an external generation step.
// Non-empty fields override the values compiled into the binary.
type Stamp struct {
	// Package is the distributed artifact's name.
	Package string `yaml:"package"`
	// GitSHA is the source-control commit identifier.
	GitSHA string `yaml:"git_sha"`
	// GitDescription is the human-readable source-control label.
	GitDescription string `yaml:"git_description"`
}

const (
	// DefaultStampFilename is the stamp file looked up next to the binary
	// when no explicit path is configured.
	DefaultStampFilename = "buildstamp.yaml"

	// EnvStampFile names the environment variable pointing at a stamp file.
	EnvStampFile = "BUILDSTAMP_STAMP_FILE"

	// EnvLogLevel names the environment variable controlling log verbosity.
	EnvLogLevel = "BUILDSTAMP_LOG_LEVEL"

	// DefaultFilePermissions is the file permission used when saving stamps.
	DefaultFilePermissions = 0o600
)

var (
	// errStampIsNotSet is returned when a nil stamp is provided.
	errStampIsNotSet = errors.New("stamp is not set")
	// errStampIsEmpty is returned when a stamp carries no values at all.
	errStampIsEmpty = errors.New("stamp has no fields set")
)

// Load reads a stamp from the provided path and validates it.
func Load(path string) (*Stamp, error) {
	if path == "" {
		path = DefaultStampFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read stamp: %w", err)
	}

	var stamp Stamp
	if err := yaml.Unmarshal(contents, &stamp); err != nil {
		return nil, fmt.Errorf("unmarshal stamp: %w", err)
	}

	if err := Validate(&stamp); err != nil {
		return nil, err
	}

	return &stamp, nil
}

// Save writes the stamp to the provided path.
func Save(path string, stamp *Stamp) error {
	if stamp == nil {
		return errStampIsNotSet
	}

	if path == "" {
		path = DefaultStampFilename
	}

	if err := Validate(stamp); err != nil {
		return err
	}

	data, err := yaml.Marshal(stamp)
	if err != nil {
		return fmt.Errorf("marshal stamp: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write stamp: %w", err)
	}

	return nil
}

// Validate checks the provided stamp carries at least one value.
// An entirely empty stamp is a generation-step bug worth surfacing.
func Validate(stamp *Stamp) error {
	if stamp == nil {
		return errStampIsNotSet
	}

	if stamp.Package == "" && stamp.GitSHA == "" && stamp.GitDescription == "" {
		return errStampIsEmpty
	}

	return nil
}
