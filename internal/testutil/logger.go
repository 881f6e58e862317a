package testutil

import (
	"github.com/rs/zerolog"
)

// NopLogger returns a logger that discards all output
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
