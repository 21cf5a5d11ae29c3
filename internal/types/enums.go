package types

// Enumeration values are the AUTOSAR element tags they were parsed
// from. The ForTag lookups are the only way tags become kinds; a tag
// outside the map is reported as unknown and skipped by the parser,
// never invented.

type ComponentKind string

const (
	ComponentKindApplication         ComponentKind = "APPLICATION-SW-COMPONENT-TYPE"
	ComponentKindComposition         ComponentKind = "COMPOSITION-SW-COMPONENT-TYPE"
	ComponentKindService             ComponentKind = "SERVICE-SW-COMPONENT-TYPE"
	ComponentKindSensorActuator      ComponentKind = "SENSOR-ACTUATOR-SW-COMPONENT-TYPE"
	ComponentKindComplexDeviceDriver ComponentKind = "COMPLEX-DEVICE-DRIVER-SW-COMPONENT-TYPE"
)

var componentKinds = map[string]ComponentKind{
	string(ComponentKindApplication):         ComponentKindApplication,
	string(ComponentKindComposition):         ComponentKindComposition,
	string(ComponentKindService):             ComponentKindService,
	string(ComponentKindSensorActuator):      ComponentKindSensorActuator,
	string(ComponentKindComplexDeviceDriver): ComponentKindComplexDeviceDriver,
}

func ComponentKindForTag(tag string) (ComponentKind, bool) {
	kind, ok := componentKinds[tag]
	return kind, ok
}

// Label is the short human-readable form used in tree and report output.
func (k ComponentKind) Label() string {
	switch k {
	case ComponentKindApplication:
		return "application"
	case ComponentKindComposition:
		return "composition"
	case ComponentKindService:
		return "service"
	case ComponentKindSensorActuator:
		return "sensor-actuator"
	case ComponentKindComplexDeviceDriver:
		return "complex-device-driver"
	default:
		return string(k)
	}
}

type PortDirection string

const (
	PortDirectionProvided         PortDirection = "P-PORT-PROTOTYPE"
	PortDirectionRequired         PortDirection = "R-PORT-PROTOTYPE"
	PortDirectionProvidedRequired PortDirection = "PR-PORT-PROTOTYPE"
)

var portDirections = map[string]PortDirection{
	string(PortDirectionProvided):         PortDirectionProvided,
	string(PortDirectionRequired):         PortDirectionRequired,
	string(PortDirectionProvidedRequired): PortDirectionProvidedRequired,
}

func PortDirectionForTag(tag string) (PortDirection, bool) {
	direction, ok := portDirections[tag]
	return direction, ok
}

// IsProvided reports whether the port offers an interface. PR ports
// count as both provided and required.
func (d PortDirection) IsProvided() bool {
	return d == PortDirectionProvided || d == PortDirectionProvidedRequired
}

func (d PortDirection) IsRequired() bool {
	return d == PortDirectionRequired || d == PortDirectionProvidedRequired
}

func (d PortDirection) Label() string {
	switch d {
	case PortDirectionProvided:
		return "provided"
	case PortDirectionRequired:
		return "required"
	case PortDirectionProvidedRequired:
		return "provided-required"
	default:
		return string(d)
	}
}

type ConnectorKind string

const (
	ConnectorKindAssembly    ConnectorKind = "ASSEMBLY-SW-CONNECTOR"
	ConnectorKindDelegation  ConnectorKind = "DELEGATION-SW-CONNECTOR"
	ConnectorKindPassThrough ConnectorKind = "PASS-THROUGH-SW-CONNECTOR"
)

var connectorKinds = map[string]ConnectorKind{
	string(ConnectorKindAssembly):    ConnectorKindAssembly,
	string(ConnectorKindDelegation):  ConnectorKindDelegation,
	string(ConnectorKindPassThrough): ConnectorKindPassThrough,
}

func ConnectorKindForTag(tag string) (ConnectorKind, bool) {
	kind, ok := connectorKinds[tag]
	return kind, ok
}

func (k ConnectorKind) Label() string {
	switch k {
	case ConnectorKindAssembly:
		return "assembly"
	case ConnectorKindDelegation:
		return "delegation"
	case ConnectorKindPassThrough:
		return "pass-through"
	default:
		return string(k)
	}
}

type InterfaceKind string

const (
	InterfaceKindSenderReceiver InterfaceKind = "SENDER-RECEIVER-INTERFACE"
	InterfaceKindClientServer   InterfaceKind = "CLIENT-SERVER-INTERFACE"
	InterfaceKindTrigger        InterfaceKind = "TRIGGER-INTERFACE"
	InterfaceKindModeSwitch     InterfaceKind = "MODE-SWITCH-INTERFACE"
	InterfaceKindNvData         InterfaceKind = "NV-DATA-INTERFACE"
)

var interfaceKinds = map[string]InterfaceKind{
	string(InterfaceKindSenderReceiver): InterfaceKindSenderReceiver,
	string(InterfaceKindClientServer):   InterfaceKindClientServer,
	string(InterfaceKindTrigger):        InterfaceKindTrigger,
	string(InterfaceKindModeSwitch):     InterfaceKindModeSwitch,
	string(InterfaceKindNvData):         InterfaceKindNvData,
}

func InterfaceKindForTag(tag string) (InterfaceKind, bool) {
	kind, ok := interfaceKinds[tag]
	return kind, ok
}

func (k InterfaceKind) Label() string {
	switch k {
	case InterfaceKindSenderReceiver:
		return "sender-receiver"
	case InterfaceKindClientServer:
		return "client-server"
	case InterfaceKindTrigger:
		return "trigger"
	case InterfaceKindModeSwitch:
		return "mode-switch"
	case InterfaceKindNvData:
		return "nv-data"
	default:
		return string(k)
	}
}

// ArgumentDirection is the DIRECTION of a client-server operation
// argument as written in the document.
type ArgumentDirection string

const (
	ArgumentDirectionIn    ArgumentDirection = "IN"
	ArgumentDirectionOut   ArgumentDirection = "OUT"
	ArgumentDirectionInOut ArgumentDirection = "INOUT"
)

var argumentDirections = map[string]ArgumentDirection{
	string(ArgumentDirectionIn):    ArgumentDirectionIn,
	string(ArgumentDirectionOut):   ArgumentDirectionOut,
	string(ArgumentDirectionInOut): ArgumentDirectionInOut,
}

func ArgumentDirectionForTag(tag string) (ArgumentDirection, bool) {
	direction, ok := argumentDirections[tag]
	return direction, ok
}
