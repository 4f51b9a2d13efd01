package main

import (
	"errors"

	internalstrings "github.com/amonks/rtd/internal/strings"
	"github.com/amonks/rtd/internal/ui"
	"github.com/amonks/rtd/internal/validation"
	"github.com/amonks/rtd/task"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*listTypeValue)(nil)
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*colorValue)(nil)
)

// listTypeValue is a pflag.Value restricted to the task filters.
type listTypeValue task.Filter

func (v *listTypeValue) String() string { return string(*v) }

func (v *listTypeValue) Set(value string) error {
	filter := task.Filter(internalstrings.NormalizeLowerTrimSpace(value))
	if !filter.IsValid() {
		return validation.FormatInvalidValueError(task.ErrInvalidFilter, filter, task.ValidFilters())
	}
	*v = listTypeValue(filter)
	return nil
}

func (v *listTypeValue) Type() string { return "list-type" }

// outputFormat selects how list prints tasks.
type outputFormat string

const (
	formatPretty outputFormat = "pretty"
	formatJSON   outputFormat = "json"
	formatYAML   outputFormat = "yaml"
	formatTable  outputFormat = "table"
)

var errInvalidFormat = errors.New("invalid format")

func validFormats() []outputFormat {
	return []outputFormat{formatPretty, formatTable, formatJSON, formatYAML}
}

type formatValue outputFormat

func (v *formatValue) String() string { return string(*v) }

func (v *formatValue) Set(value string) error {
	format := outputFormat(internalstrings.NormalizeLowerTrimSpace(value))
	for _, valid := range validFormats() {
		if format == valid {
			*v = formatValue(format)
			return nil
		}
	}
	return validation.FormatInvalidValueError(errInvalidFormat, format, validFormats())
}

func (v *formatValue) Type() string { return "format" }

type colorValue ui.ColorMode

func (v *colorValue) String() string { return string(*v) }

func (v *colorValue) Set(value string) error {
	mode, err := ui.ParseColorMode(value)
	if err != nil {
		return err
	}
	*v = colorValue(mode)
	return nil
}

func (v *colorValue) Type() string { return "mode" }
