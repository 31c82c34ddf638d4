package identifier

// LTR talkgroup code layout (14 bits)
const (
	LTRAreaMask  = 0x2000 // Bit 13: area
	LTRHomeMask  = 0x1F00 // Bits 8-12: home repeater
	LTRGroupMask = 0x00FF // Bits 0-7: group

	ltrAreaShift = 13
	ltrHomeShift = 8
)

// LTRTalkgroup is an LTR talkgroup identifier holding a packed
// area/home/group code.
type LTRTalkgroup struct {
	code int
}

// EncodeLTR packs an (area, home, group) triple into a single LTR talkgroup
// code. Components are shifted into place without range checks; out-of-range
// components bleed into neighboring fields and read back masked.
func EncodeLTR(area, home, group int) int {
	return (area << ltrAreaShift) | (home << ltrHomeShift) | group
}

// NewLTRTalkgroup wraps an already-encoded LTR talkgroup code.
func NewLTRTalkgroup(code int) LTRTalkgroup {
	return LTRTalkgroup{code: code}
}

func (t LTRTalkgroup) Value() int {
	return t.code
}

// Area returns the area bit of the code.
func (t LTRTalkgroup) Area() int {
	return (t.code & LTRAreaMask) >> ltrAreaShift
}

// Home returns the home repeater channel of the code.
func (t LTRTalkgroup) Home() int {
	return (t.code & LTRHomeMask) >> ltrHomeShift
}

// Group returns the group number of the code.
func (t LTRTalkgroup) Group() int {
	return t.code & LTRGroupMask
}
