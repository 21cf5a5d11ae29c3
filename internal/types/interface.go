package types

// Interface is one port interface definition. DataElements is filled
// for sender-receiver interfaces, Operations for client-server ones;
// the remaining kinds are modeled by name only.
type Interface struct {
	Element
	Kind         InterfaceKind
	PackagePath  string
	DataElements []DataElement
	Operations   []Operation
}

type DataElement struct {
	Name    string
	TypeRef string
}

type Operation struct {
	Name      string
	Arguments []OperationArgument
}

type OperationArgument struct {
	Name      string
	TypeRef   string
	Direction ArgumentDirection
}

func NewInterface(shortName string, kind InterfaceKind) *Interface {
	return &Interface{Element: NewElement(shortName), Kind: kind}
}

// FullPath is the interface's package path plus its short name, the
// form TREFs use to point at it.
func (i *Interface) FullPath() string {
	if i.PackagePath == "" {
		return i.ShortName
	}
	return i.PackagePath + "/" + i.ShortName
}
