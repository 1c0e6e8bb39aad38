package main

import (
	"fmt"
	"slices"

	"github.com/at-ishikawa/ogura-an/internal/i18n"
	"github.com/spf13/pflag"
)

type Language string

func (l *Language) Set(val string) error {
	if !slices.Contains(i18n.SupportedLocales(), val) {
		return fmt.Errorf("invalid language: %s", val)
	}
	*l = Language(val)
	return nil
}

func (l Language) String() string {
	return string(l)
}

func (l *Language) Type() string {
	return "Language"
}

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var allFormats = []Format{FormatYAML, FormatJSON}

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

var (
	_ pflag.Value = (*Language)(nil)
	_ pflag.Value = (*Format)(nil)
)
