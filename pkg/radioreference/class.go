package radioreference

import "github.com/agnivade/levenshtein"

// Catalog Type/Flavor/Voice records are classified once at construction so the
// rule tables dispatch on closed variants instead of raw catalog name strings.
// The zero value of each class covers missing ids and unrecognized names.

type typeClass int

const (
	typeOther typeClass = iota
	typeLTR
	typeMPT1327
	typeProject25
	typeMotorola
	typeKnownUnsupported
)

// typeClassByName covers every type name the catalog is known to carry.
// Entries mapped to typeKnownUnsupported are recognized but have no protocol
// classification; names absent from the map are diagnosed at construction.
var typeClassByName = map[string]typeClass{
	"LTR":         typeLTR,
	"MPT-1327":    typeMPT1327,
	"Project 25":  typeProject25,
	"Motorola":    typeMotorola,
	"DMR":         typeKnownUnsupported,
	"NXDN":        typeKnownUnsupported,
	"EDACS":       typeKnownUnsupported,
	"TETRA":       typeKnownUnsupported,
	"Midland CMS": typeKnownUnsupported,
	"OpenSky":     typeKnownUnsupported,
	"iDEN":        typeKnownUnsupported,
	"SmarTrunk":   typeKnownUnsupported,
	"Other":       typeKnownUnsupported,
}

type flavorClass int

const (
	flavorOther flavorClass = iota
	flavorStandard
	flavorNet
	flavorPassport
	flavorPhase1
	flavorPhase2
)

var flavorClassByName = map[string]flavorClass{
	"Standard": flavorStandard,
	"Net":      flavorNet,
	"Passport": flavorPassport,
	"Phase I":  flavorPhase1,
	"Phase II": flavorPhase2,
}

type voiceClass int

const (
	voiceOther voiceClass = iota
	voiceAnalogAndP25
	voiceP25Exclusive
)

var voiceClassByName = map[string]voiceClass{
	"Analog and APCO-25 Common Air Interface": voiceAnalogAndP25,
	"APCO-25 Common Air Interface Exclusive":  voiceP25Exclusive,
}

// orderedTypeNames keeps nearest-name suggestions deterministic.
var orderedTypeNames = []string{
	"LTR",
	"MPT-1327",
	"Project 25",
	"Motorola",
	"DMR",
	"NXDN",
	"EDACS",
	"TETRA",
	"Midland CMS",
	"OpenSky",
	"iDEN",
	"SmarTrunk",
	"Other",
}

// nearestTypeName returns the known type name closest to name and its
// levenshtein distance, for diagnostics when the catalog carries a spelling
// this package does not recognize.
func nearestTypeName(name string) (string, int) {
	nearest := ""
	best := -1
	for _, known := range orderedTypeNames {
		distance := levenshtein.ComputeDistance(name, known)
		if best == -1 || distance < best {
			nearest = known
			best = distance
		}
	}
	return nearest, best
}
