package format_test

import (
	"testing"

	"github.com/interrupt21h/radioref/pkg/format"
	"github.com/interrupt21h/radioref/pkg/identifier"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceFormat(t *testing.T) {
	tests := []struct {
		name  string
		style format.Style
		id    identifier.Identifier
		want  string
	}{
		{
			name:  "decimal apco25",
			style: format.StyleDecimal,
			id:    identifier.NewAPCO25Talkgroup(12345),
			want:  "12345",
		},
		{
			name:  "hexadecimal apco25",
			style: format.StyleHexadecimal,
			id:    identifier.NewAPCO25Talkgroup(12345),
			want:  "0x3039",
		},
		{
			name:  "formatted apco25 falls back to decimal",
			style: format.StyleFormatted,
			id:    identifier.NewAPCO25Talkgroup(12345),
			want:  "12345",
		},
		{
			name:  "formatted ltr",
			style: format.StyleFormatted,
			id:    identifier.NewLTRTalkgroup(identifier.EncodeLTR(1, 5, 67)),
			want:  "1-05-067",
		},
		{
			name:  "decimal ltr uses packed code",
			style: format.StyleDecimal,
			id:    identifier.NewLTRTalkgroup(identifier.EncodeLTR(1, 5, 67)),
			want:  "9539",
		},
		{
			name:  "formatted mpt-1327",
			style: format.StyleFormatted,
			id:    identifier.NewMPT1327Talkgroup(12, 3456),
			want:  "012-3456",
		},
		{
			name:  "formatted passport falls back to decimal",
			style: format.StyleFormatted,
			id:    identifier.NewPassportTalkgroup(54321),
			want:  "54321",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.NewPreference(tt.style).Format(tt.id)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferenceFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "decimal",
			value: "decimal",
		},
		{
			name:  "hexadecimal",
			value: "hexadecimal",
		},
		{
			name:  "formatted",
			value: "formatted",
		},
		{
			name:    "unknown style",
			value:   "octal",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref, err := format.PreferenceFromConfig(&format.Config{TalkgroupFormat: tt.value})
			if tt.wantErr {
				assert.ErrorIs(t, err, format.ErrUnknownStyle)
				assert.Nil(t, pref)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, pref)
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Setenv("TALKGROUP_FORMAT", "formatted")

	cfg, err := format.NewConfig()
	assert.NoError(t, err)
	assert.Equal(t, "formatted", cfg.TalkgroupFormat)
}
