package colorutil

import (
	"io"
	"log"
)

// logTag prefixes every diagnostic written by Utils
const logTag = "[colorutil]"

// Utils reproduces the soft-failure contract: invalid input yields "" and one
// diagnostic line on the configured logger instead of an error value
type Utils struct {
	logger *log.Logger
	source Source
}

// Option configures a Utils
type Option func(*Utils)

// WithLogger routes diagnostics to l, nil discards them
func WithLogger(l *log.Logger) Option {
	return func(u *Utils) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		u.logger = l
	}
}

// WithSource sets the random source used by RandomHex
func WithSource(src Source) Option {
	return func(u *Utils) {
		if src != nil {
			u.source = src
		}
	}
}

// New creates a Utils writing to the standard logger with the default source
func New(opts ...Option) *Utils {
	u := &Utils{
		logger: log.Default(),
		source: DefaultSource,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// RandomHex returns a random "#rrggbb" color from the configured source
func (u *Utils) RandomHex() string {
	return RandomHex(u.source)
}

// RGBToHex returns "" and logs when any channel is not an integer in [0,255]
func (u *Utils) RGBToHex(r, g, b float64) string {
	out, err := RGBToHex(r, g, b)
	if err != nil {
		u.logger.Printf("%s Invalid RGB values: %v", logTag, err)
		return ""
	}
	return out
}

// Lighten returns "" and logs when hex is malformed
func (u *Utils) Lighten(hex string, percent float64) string {
	out, err := Lighten(hex, percent)
	if err != nil {
		u.logger.Printf("%s Invalid parameters: %v", logTag, err)
		return ""
	}
	return out
}
