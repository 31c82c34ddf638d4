// Package identifier provides the structured talkgroup identifiers built
// during classification, one shape per supported air-interface protocol. A
// display policy renders them; see pkg/format.
package identifier

// Identifier is a protocol-shaped talkgroup value.
type Identifier interface {
	// Value returns the identifier's raw integer form.
	Value() int
}
