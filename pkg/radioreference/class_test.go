package radioreference

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/interrupt21h/radioref/pkg/format"
	"github.com/stretchr/testify/assert"
)

func TestNearestTypeName(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantNearest  string
		wantDistance int
	}{
		{
			name:         "exact name",
			in:           "LTR",
			wantNearest:  "LTR",
			wantDistance: 0,
		},
		{
			name:         "trailing punctuation",
			in:           "Project 25!",
			wantNearest:  "Project 25",
			wantDistance: 1,
		},
		{
			name:         "close misspelling",
			in:           "MPT-1372",
			wantNearest:  "MPT-1327",
			wantDistance: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearest, distance := nearestTypeName(tt.in)
			assert.Equal(t, tt.wantNearest, nearest)
			assert.Equal(t, tt.wantDistance, distance)
		})
	}
}

func TestNewDecoderDiagnosesUnrecognizedTypeName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	types := map[int]Type{
		1: {TypeID: 1, Name: "LTR"},
		2: {TypeID: 2, Name: "Projekt 25"},
	}
	flavors := map[int]Flavor{
		1: {FlavorID: 1, Name: "Standard"},
	}

	decoder := NewDecoder(format.NewPreference(format.StyleDecimal), types, flavors, nil, nil, WithLogger(logger))

	assert.Contains(t, buf.String(), "unrecognized system type in catalog")
	assert.Contains(t, buf.String(), "Projekt 25")
	assert.Contains(t, buf.String(), "Project 25")

	// The unrecognized name still classifies, as unknown.
	assert.Equal(t, ProtocolUnknown, decoder.Protocol(System{TypeID: 2, FlavorID: 1}))
	assert.Equal(t, ProtocolLTR, decoder.Protocol(System{TypeID: 1, FlavorID: 1}))
}
