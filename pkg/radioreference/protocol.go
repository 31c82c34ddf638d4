package radioreference

// Protocol is the air-interface/trunking standard a system uses.
type Protocol string

const (
	ProtocolAPCO25   Protocol = "APCO25"
	ProtocolLTR      Protocol = "LTR"
	ProtocolMPT1327  Protocol = "MPT1327"
	ProtocolPassport Protocol = "PASSPORT"
	ProtocolUnknown  Protocol = "UNKNOWN"
)

func (p Protocol) String() string {
	return string(p)
}

// DecoderType names the concrete signal-decoder implementation that applies
// to a classified system. The zero value means no decoder exists.
type DecoderType string

const (
	DecoderNone        DecoderType = ""
	DecoderLTRNet      DecoderType = "LTR_NET"
	DecoderLTRStandard DecoderType = "LTR_STANDARD"
	DecoderPassport    DecoderType = "PASSPORT"
	DecoderMPT1327     DecoderType = "MPT1327"
	DecoderP25Phase1   DecoderType = "P25_PHASE1"
	DecoderP25Phase2   DecoderType = "P25_PHASE2"
)

func (d DecoderType) String() string {
	return string(d)
}
