package types

import "github.com/google/uuid"

// Port is one port prototype. InterfaceRef keeps the raw TREF text;
// Interface is filled during reference resolution and stays nil when
// the target is not in the document.
type Port struct {
	Element
	Direction     PortDirection
	InterfaceRef  string
	Interface     *Interface
	ComponentUUID uuid.UUID
}

func NewPort(shortName string, direction PortDirection) *Port {
	return &Port{Element: NewElement(shortName), Direction: direction}
}

func (p *Port) IsProvided() bool {
	return p.Direction.IsProvided()
}

func (p *Port) IsRequired() bool {
	return p.Direction.IsRequired()
}
