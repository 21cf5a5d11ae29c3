package app

import "arxml-viewer/internal/types"

type InspectRequest struct {
	Path string
}

type InspectResult struct {
	Packages    []*types.Package
	Connections []*types.Connection
	Metadata    types.ParseMetadata
}

type ValidateRequest struct {
	Paths          []string
	RequireAutosar bool
	Jobs           int
}

// FileReport is one file's validation outcome. Autosar and the XML
// facts are only meaningful when Valid is true.
type FileReport struct {
	Path         string
	Valid        bool
	Autosar      bool
	RootElement  string
	ElementCount int
	Error        string
}

type ValidateResult struct {
	Reports []FileReport
	Failed  int
}

type ExportRequest struct {
	Path   string
	Output string
	Format string
}

type ExportResult struct {
	OutputPath  string
	Components  int
	Connections int
}

type InfoRequest struct {
	Path string
}

type InfoResult struct {
	Info types.XMLInfo
}
