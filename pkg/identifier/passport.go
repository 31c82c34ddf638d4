package identifier

// PassportTalkgroup is a Passport talkgroup identifier carrying the raw
// decimal value.
type PassportTalkgroup struct {
	value int
}

func NewPassportTalkgroup(value int) PassportTalkgroup {
	return PassportTalkgroup{value: value}
}

func (t PassportTalkgroup) Value() int {
	return t.value
}
