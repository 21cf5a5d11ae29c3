package types

import "time"

// Statistics are the headline counters for one parse run. All counts
// are recursive totals over the whole package tree.
type Statistics struct {
	PackagesParsed    int           `json:"packages_parsed" yaml:"packages_parsed"`
	ComponentsParsed  int           `json:"components_parsed" yaml:"components_parsed"`
	PortsParsed       int           `json:"ports_parsed" yaml:"ports_parsed"`
	InterfacesParsed  int           `json:"interfaces_parsed" yaml:"interfaces_parsed"`
	ConnectionsParsed int           `json:"connections_parsed" yaml:"connections_parsed"`
	ParseTime         time.Duration `json:"parse_time_ns" yaml:"parse_time_ns"`
}

// DebugCounters track how reference resolution and the skip policy
// behaved. PrototypesAttempted counts connector endpoints that went
// through component resolution; StandaloneComponents counts components
// no composition prototype points at.
type DebugCounters struct {
	CompositionsFound    int `json:"compositions_found" yaml:"compositions_found"`
	PrototypesAttempted  int `json:"prototypes_attempted" yaml:"prototypes_attempted"`
	PrototypesSuccessful int `json:"prototypes_successful" yaml:"prototypes_successful"`
	StandaloneComponents int `json:"standalone_components" yaml:"standalone_components"`
	ElementsSkipped      int `json:"elements_skipped" yaml:"elements_skipped"`
	PortsSkipped         int `json:"ports_skipped" yaml:"ports_skipped"`
	MissingShortNames    int `json:"missing_short_names" yaml:"missing_short_names"`
}

type ParseMetadata struct {
	FilePath       string            `json:"file_path" yaml:"file_path"`
	FileSize       int64             `json:"file_size" yaml:"file_size"`
	AutosarVersion string            `json:"autosar_version" yaml:"autosar_version"`
	Namespaces     map[string]string `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	Statistics     Statistics        `json:"statistics" yaml:"statistics"`
	Debug          DebugCounters     `json:"debug" yaml:"debug"`
}

// XMLInfo is the well-formedness probe result for one file. It is a
// plain record, never an error: a failed probe sets Valid false and
// carries the message in Error.
type XMLInfo struct {
	Valid        bool              `json:"valid" yaml:"valid"`
	RootElement  string            `json:"root_element,omitempty" yaml:"root_element,omitempty"`
	Namespace    string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Encoding     string            `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	XMLVersion   string            `json:"xml_version,omitempty" yaml:"xml_version,omitempty"`
	Namespaces   map[string]string `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	ElementCount int               `json:"element_count,omitempty" yaml:"element_count,omitempty"`
	Error        string            `json:"error,omitempty" yaml:"error,omitempty"`
}
