// Package radioreference classifies radio-system metadata from an external
// reference catalog into an internal protocol and decoder-type enumeration,
// and formats raw talkgroup values per protocol.
package radioreference

import (
	"log/slog"
	"strconv"

	"github.com/interrupt21h/radioref/pkg/format"
	"github.com/interrupt21h/radioref/pkg/identifier"
)

// Decoder classifies systems against four catalog lookup tables supplied at
// construction. The tables are never mutated afterwards, so a single Decoder
// may be shared across concurrent callers.
type Decoder struct {
	types   map[int]Type
	flavors map[int]Flavor
	voices  map[int]Voice
	tags    map[int]Tag

	typeClasses   map[int]typeClass
	flavorClasses map[int]flavorClass
	voiceClasses  map[int]voiceClass

	pref *format.Preference
	log  *slog.Logger
}

type Option func(*Decoder)

// WithLogger sets the logger used for classification diagnostics. Defaults to
// slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(d *Decoder) {
		d.log = log
	}
}

// NewDecoder builds a Decoder over the catalog lookup tables. Type, flavor and
// voice names are classified once here; an unrecognized type name is logged
// with the nearest known name as a hint, and classifies as unknown.
func NewDecoder(pref *format.Preference, types map[int]Type, flavors map[int]Flavor, voices map[int]Voice, tags map[int]Tag, opts ...Option) *Decoder {
	d := &Decoder{
		types:         types,
		flavors:       flavors,
		voices:        voices,
		tags:          tags,
		typeClasses:   make(map[int]typeClass, len(types)),
		flavorClasses: make(map[int]flavorClass, len(flavors)),
		voiceClasses:  make(map[int]voiceClass, len(voices)),
		pref:          pref,
		log:           slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	for id, t := range types {
		class, ok := typeClassByName[t.Name]
		if !ok {
			nearest, distance := nearestTypeName(t.Name)
			d.log.Warn("unrecognized system type in catalog",
				slog.String("name", t.Name),
				slog.String("nearest_known", nearest),
				slog.Int("distance", distance))
		}
		d.typeClasses[id] = class
	}
	for id, f := range flavors {
		d.flavorClasses[id] = flavorClassByName[f.Name]
	}
	for id, v := range voices {
		d.voiceClasses[id] = voiceClassByName[v.Name]
	}

	return d
}

// Type returns the catalog type record for the system, if present.
func (d *Decoder) Type(sys System) (Type, bool) {
	t, ok := d.types[sys.TypeID]
	return t, ok
}

// Flavor returns the catalog flavor record for the system, if present.
func (d *Decoder) Flavor(sys System) (Flavor, bool) {
	f, ok := d.flavors[sys.FlavorID]
	return f, ok
}

// Voice returns the catalog voice record for the system, if present.
func (d *Decoder) Voice(sys System) (Voice, bool) {
	v, ok := d.voices[sys.VoiceID]
	return v, ok
}

// Protocol resolves the air-interface protocol for the system. Systems whose
// type, flavor or voice fall outside the rule table classify as
// ProtocolUnknown; missing catalog ids do the same.
func (d *Decoder) Protocol(sys System) Protocol {
	tc := d.typeClasses[sys.TypeID]
	fc := d.flavorClasses[sys.FlavorID]
	vc := d.voiceClasses[sys.VoiceID]

	switch tc {
	case typeLTR:
		switch fc {
		case flavorStandard, flavorNet:
			return ProtocolLTR
		case flavorPassport:
			return ProtocolPassport
		}
	case typeMPT1327:
		return ProtocolMPT1327
	case typeProject25:
		return ProtocolAPCO25
	case typeMotorola:
		if vc == voiceAnalogAndP25 || vc == voiceP25Exclusive {
			return ProtocolAPCO25
		}
	}

	return ProtocolUnknown
}

// DecoderType resolves the decoder implementation for the system, or
// DecoderNone when no decoder applies.
func (d *Decoder) DecoderType(sys System) DecoderType {
	tc := d.typeClasses[sys.TypeID]
	fc := d.flavorClasses[sys.FlavorID]
	vc := d.voiceClasses[sys.VoiceID]

	switch tc {
	case typeLTR:
		switch fc {
		case flavorNet:
			return DecoderLTRNet
		case flavorPassport:
			return DecoderPassport
		default:
			// Every flavor other than Net and Passport decodes as LTR
			// standard, not only the "Standard" flavor.
			return DecoderLTRStandard
		}
	case typeMPT1327:
		return DecoderMPT1327
	case typeProject25:
		switch fc {
		case flavorPhase2:
			return DecoderP25Phase2
		case flavorPhase1:
			return DecoderP25Phase1
		}
	case typeMotorola:
		if vc == voiceAnalogAndP25 || vc == voiceP25Exclusive {
			return DecoderP25Phase1
		}
	}

	return DecoderNone
}

// Format renders the talkgroup's decimal value as a protocol-specific display
// string using the injected preference. Systems that classify as
// ProtocolUnknown render as the plain decimal value.
func (d *Decoder) Format(tg Talkgroup, sys System) string {
	protocol := d.Protocol(sys)

	switch protocol {
	case ProtocolAPCO25:
		return d.pref.Format(identifier.NewAPCO25Talkgroup(tg.DecimalValue))
	case ProtocolLTR:
		value := tg.DecimalValue
		area := 0
		if value >= 100000 {
			area = 1
		}
		home := value / 1000
		group := value % 1000
		return d.pref.Format(identifier.NewLTRTalkgroup(identifier.EncodeLTR(area, home, group)))
	case ProtocolMPT1327:
		prefix := tg.DecimalValue / 10000
		ident := tg.DecimalValue % 10000
		return d.pref.Format(identifier.NewMPT1327Talkgroup(prefix, ident))
	case ProtocolPassport:
		return d.pref.Format(identifier.NewPassportTalkgroup(tg.DecimalValue))
	}

	d.log.Warn("unrecognized protocol, using default talkgroup format",
		slog.String("protocol", protocol.String()),
		slog.Int("talkgroup", tg.DecimalValue))

	return strconv.Itoa(tg.DecimalValue)
}

// Tags resolves the talkgroup's embedded tag references against the tag
// table. The embedded tags carry only an id, so each is replaced with the
// full catalog record. An id missing from the table yields a zero Tag holding
// just that id, keeping the result the same length and order as the
// talkgroup's own tag list.
func (d *Decoder) Tags(tg Talkgroup) []Tag {
	tags := make([]Tag, 0, len(tg.Tags))

	for _, ref := range tg.Tags {
		full, ok := d.tags[ref.TagID]
		if !ok {
			full = Tag{TagID: ref.TagID}
		}
		tags = append(tags, full)
	}

	return tags
}
