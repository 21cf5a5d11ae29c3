package types

// Component is one software component type. Ports holds every port in
// document order regardless of direction; the filtered accessors
// derive the provided and required views from it.
type Component struct {
	Element
	Kind        ComponentKind
	PackagePath string
	Ports       []*Port

	// Prototypes lists the SW-COMPONENT-PROTOTYPE children of a
	// composition: the role name and the raw TYPE-TREF text.
	Prototypes []Prototype
}

type Prototype struct {
	ShortName string
	TypeRef   string
}

func NewComponent(shortName string, kind ComponentKind) *Component {
	return &Component{Element: NewElement(shortName), Kind: kind}
}

// AddPort appends the port and stamps its owning component UUID.
func (c *Component) AddPort(port *Port) {
	port.ComponentUUID = c.UUID
	c.Ports = append(c.Ports, port)
}

func (c *Component) ProvidedPorts() []*Port {
	var ports []*Port
	for _, port := range c.Ports {
		if port.Direction.IsProvided() {
			ports = append(ports, port)
		}
	}
	return ports
}

func (c *Component) RequiredPorts() []*Port {
	var ports []*Port
	for _, port := range c.Ports {
		if port.Direction.IsRequired() {
			ports = append(ports, port)
		}
	}
	return ports
}

func (c *Component) PortByName(name string) *Port {
	for _, port := range c.Ports {
		if port.ShortName == name {
			return port
		}
	}
	return nil
}

func (c *Component) PortCount() int {
	return len(c.Ports)
}

func (c *Component) IsComposition() bool {
	return c.Kind == ComponentKindComposition
}
