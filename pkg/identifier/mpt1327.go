package identifier

// MPT-1327 talkgroup code layout (20 bits)
const (
	MPT1327PrefixMask = 0xFE000 // Bits 13-19: prefix
	MPT1327IdentMask  = 0x01FFF // Bits 0-12: ident

	mpt1327PrefixShift = 13
)

// MPT1327Talkgroup is an MPT-1327 talkgroup identifier holding a packed
// prefix/ident code.
type MPT1327Talkgroup struct {
	code int
}

func NewMPT1327Talkgroup(prefix, ident int) MPT1327Talkgroup {
	return MPT1327Talkgroup{code: (prefix << mpt1327PrefixShift) | ident}
}

func (t MPT1327Talkgroup) Value() int {
	return t.code
}

// Prefix returns the prefix component of the code.
func (t MPT1327Talkgroup) Prefix() int {
	return (t.code & MPT1327PrefixMask) >> mpt1327PrefixShift
}

// Ident returns the ident component of the code.
func (t MPT1327Talkgroup) Ident() int {
	return t.code & MPT1327IdentMask
}
