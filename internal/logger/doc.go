// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Warnf, ErrorKV, etc.).
//
// Diagnostics go to stderr: stdout is reserved for the version report, which
// downstream tooling parses byte for byte.
package logger
