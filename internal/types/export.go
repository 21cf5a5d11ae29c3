package types

import "time"

// ModelExport is the flattened snapshot written by the export command.
// Records reference entities by short name and UUID string so the
// output is stable for diffing and downstream tooling.
type ModelExport struct {
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	Metadata    ParseMetadata      `json:"metadata" yaml:"metadata"`
	Packages    []PackageRecord    `json:"packages" yaml:"packages"`
	Connections []ConnectionRecord `json:"connections,omitempty" yaml:"connections,omitempty"`
}

type PackageRecord struct {
	Path        string            `json:"path" yaml:"path"`
	Components  []ComponentRecord `json:"components,omitempty" yaml:"components,omitempty"`
	Interfaces  []InterfaceRecord `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	SubPackages []PackageRecord   `json:"sub_packages,omitempty" yaml:"sub_packages,omitempty"`
}

type ComponentRecord struct {
	UUID  string       `json:"uuid" yaml:"uuid"`
	Name  string       `json:"name" yaml:"name"`
	Kind  string       `json:"kind" yaml:"kind"`
	Ports []PortRecord `json:"ports,omitempty" yaml:"ports,omitempty"`
}

type PortRecord struct {
	UUID      string `json:"uuid" yaml:"uuid"`
	Name      string `json:"name" yaml:"name"`
	Direction string `json:"direction" yaml:"direction"`

	// Interface is the resolved interface's full path, or the raw
	// reference text when resolution failed.
	Interface string `json:"interface,omitempty" yaml:"interface,omitempty"`
}

type InterfaceRecord struct {
	Name         string   `json:"name" yaml:"name"`
	Kind         string   `json:"kind" yaml:"kind"`
	DataElements []string `json:"data_elements,omitempty" yaml:"data_elements,omitempty"`
	Operations   []string `json:"operations,omitempty" yaml:"operations,omitempty"`
}

type ConnectionRecord struct {
	Name      string         `json:"name" yaml:"name"`
	Kind      string         `json:"kind" yaml:"kind"`
	Provider  EndpointRecord `json:"provider" yaml:"provider"`
	Requester EndpointRecord `json:"requester" yaml:"requester"`
}

// EndpointRecord carries the resolved UUIDs next to the raw reference
// text, so unresolved endpoints stay identifiable in the output.
type EndpointRecord struct {
	Component    string `json:"component,omitempty" yaml:"component,omitempty"`
	Port         string `json:"port,omitempty" yaml:"port,omitempty"`
	ComponentRef string `json:"component_ref,omitempty" yaml:"component_ref,omitempty"`
	PortRef      string `json:"port_ref,omitempty" yaml:"port_ref,omitempty"`
	Resolved     bool   `json:"resolved" yaml:"resolved"`
}
