package ui

import (
	"errors"
	"os"

	internalstrings "github.com/amonks/rtd/internal/strings"
	"github.com/amonks/rtd/internal/validation"
	"golang.org/x/term"
)

// ColorMode controls whether output is styled with ANSI escapes.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColorMode is returned for unknown color mode names.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode parses a color mode name, case-insensitively.
func ParseColorMode(value string) (ColorMode, error) {
	mode := ColorMode(internalstrings.NormalizeLowerTrimSpace(value))
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", validation.FormatInvalidValueError(ErrInvalidColorMode, mode, []ColorMode{ColorAuto, ColorAlways, ColorNever})
	}
}

// Enabled reports whether output written to f should be styled.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
