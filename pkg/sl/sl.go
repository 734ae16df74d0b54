// Package sl provides small helpers for structured logging with slog.
package sl

import "log/slog"

// Err returns a slog.Attr carrying an error message under the "error" key,
// so error logging stays uniform across the codebase.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
