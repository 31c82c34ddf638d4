// Package format renders structured talkgroup identifiers for display
// according to a user preference.
package format

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/interrupt21h/radioref/pkg/identifier"
)

// Style selects how talkgroup identifiers are rendered.
type Style string

const (
	StyleDecimal     Style = "decimal"
	StyleHexadecimal Style = "hexadecimal"
	StyleFormatted   Style = "formatted"
)

type Config struct {
	TalkgroupFormat string `env:"TALKGROUP_FORMAT" envDefault:"decimal"`
}

func NewConfig() (*Config, error) {
	var cfg Config

	err := env.Parse(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

var ErrUnknownStyle = errors.New("unknown talkgroup format style")

// Preference is a display policy for talkgroup identifiers.
type Preference struct {
	style Style
}

func NewPreference(style Style) *Preference {
	return &Preference{style: style}
}

// PreferenceFromConfig validates the configured style name and builds the
// matching preference.
func PreferenceFromConfig(cfg *Config) (*Preference, error) {
	style := Style(cfg.TalkgroupFormat)

	switch style {
	case StyleDecimal, StyleHexadecimal, StyleFormatted:
		return NewPreference(style), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, cfg.TalkgroupFormat)
}

// Format renders the identifier according to the configured style. The
// formatted style has one rendering per identifier shape (LTR "A-HH-GGG",
// MPT-1327 "PPP-IIII"); shapes without a structured rendering, and the
// decimal and hexadecimal styles, use the identifier's raw value.
func (p *Preference) Format(id identifier.Identifier) string {
	switch p.style {
	case StyleHexadecimal:
		return fmt.Sprintf("0x%X", id.Value())
	case StyleFormatted:
		switch tg := id.(type) {
		case identifier.LTRTalkgroup:
			return fmt.Sprintf("%d-%02d-%03d", tg.Area(), tg.Home(), tg.Group())
		case identifier.MPT1327Talkgroup:
			return fmt.Sprintf("%03d-%04d", tg.Prefix(), tg.Ident())
		}
	}

	return strconv.Itoa(id.Value())
}
