package types

import "github.com/google/uuid"

// Endpoint is one side of a connector. The raw references are always
// kept; the UUIDs are filled during resolution and Resolved flags
// whether both targets were found. An endpoint that fails to resolve
// keeps its refs so callers can still display the connector.
type Endpoint struct {
	ComponentRef  string
	PortRef       string
	ComponentUUID uuid.UUID
	PortUUID      uuid.UUID
	Resolved      bool
}

// Connection is one SW connector between two ports.
type Connection struct {
	Element
	Kind      ConnectorKind
	Provider  Endpoint
	Requester Endpoint
}

func NewConnection(shortName string, kind ConnectorKind) *Connection {
	return &Connection{Element: NewElement(shortName), Kind: kind}
}

func (c *Connection) Endpoints() []Endpoint {
	return []Endpoint{c.Provider, c.Requester}
}

// FullyResolved reports whether both endpoints found their targets.
func (c *Connection) FullyResolved() bool {
	return c.Provider.Resolved && c.Requester.Resolved
}

func (c *Connection) InvolvesComponent(id uuid.UUID) bool {
	for _, endpoint := range c.Endpoints() {
		if endpoint.Resolved && endpoint.ComponentUUID == id {
			return true
		}
	}
	return false
}

func (c *Connection) InvolvesPort(id uuid.UUID) bool {
	for _, endpoint := range c.Endpoints() {
		if endpoint.Resolved && endpoint.PortUUID == id {
			return true
		}
	}
	return false
}
