package identifier

// APCO25Talkgroup is an APCO-25 talkgroup identifier carrying the raw
// decimal value.
type APCO25Talkgroup struct {
	value int
}

func NewAPCO25Talkgroup(value int) APCO25Talkgroup {
	return APCO25Talkgroup{value: value}
}

func (t APCO25Talkgroup) Value() int {
	return t.value
}
