// Package colorutil provides small stateless helpers for hex and RGB colors.
//
// Features:
//   - Random hex color generation with an injectable random source
//   - RGB triple to "#rrggbb" encoding with channel validation
//   - Hex color lightening by percentage with per-channel clamping
//   - Conversion to and from tcell and go-colorful color types
//
// Functions return ErrInvalidInput (wrapped) for malformed input. The Utils
// type keeps the log-and-empty-string contract for callers that expect it.
package colorutil
