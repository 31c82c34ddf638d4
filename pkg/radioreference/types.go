package radioreference

// Catalog records as delivered by an external reference-catalog client. This
// package only reads them; fetching and decoding the catalog itself is the
// caller's concern.

type Type struct {
	TypeID int    `json:"type_id"`
	Name   string `json:"name"`
}

type Flavor struct {
	FlavorID int    `json:"flavor_id"`
	Name     string `json:"name"`
}

type Voice struct {
	VoiceID int    `json:"voice_id"`
	Name    string `json:"name"`
}

type Tag struct {
	TagID int    `json:"tag_id"`
	Name  string `json:"name"`
}

// System identifies a configured radio system. TypeID, FlavorID and VoiceID
// are foreign keys into the catalog lookup tables.
type System struct {
	SystemID int `json:"system_id"`
	TypeID   int `json:"type_id"`
	FlavorID int `json:"flavor_id"`
	VoiceID  int `json:"voice_id"`
}

// Talkgroup carries a raw decimal value and optional tag references. The
// embedded tags hold ids only; resolve them with Decoder.Tags.
type Talkgroup struct {
	DecimalValue int   `json:"decimal_value"`
	Tags         []Tag `json:"tags,omitempty"`
}
