// Package types defines the ARXML domain model: packages, components,
// ports, connections, and interfaces, plus the metadata produced by a
// parse run.
package types

import "github.com/google/uuid"

// Element carries the identity fields shared by every ARXML entity.
// UUIDs are generated at construction time rather than read from the
// document, so parsing the same file twice yields distinct identities.
type Element struct {
	UUID      uuid.UUID
	ShortName string
	Desc      string
	Category  string
}

func NewElement(shortName string) Element {
	return Element{UUID: uuid.New(), ShortName: shortName}
}
