package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"arxml-viewer/internal/core"
	"arxml-viewer/internal/types"
)

const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

var exportFormats = map[string]struct{}{
	ExportFormatJSON: {},
	ExportFormatYAML: {},
}

// Export parses one document and writes the flattened model snapshot
// to the output path in the requested format.
func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	path := strings.TrimSpace(req.Path)
	output := strings.TrimSpace(req.Output)
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if path == "" || output == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path and output path are required")
	}
	if _, ok := exportFormats[format]; !ok {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported export format: %q", req.Format))
	}

	parser := core.NewParser(s.Documents, core.DefaultParserOptions())
	parsed, err := parser.ParseFile(ctx, path)
	if err != nil {
		return ExportResult{}, err
	}
	export := buildExport(parsed, parser.ParsedConnections(), s.Clock())

	switch format {
	case ExportFormatJSON:
		err = s.Writer.WriteJSON(output, export)
	case ExportFormatYAML:
		err = s.Writer.WriteYAML(output, export)
	}
	if err != nil {
		return ExportResult{}, err
	}

	log.Ctx(ctx).Debug().
		Str("file", path).
		Str("output", output).
		Str("format", format).
		Msg("model exported")
	return ExportResult{
		OutputPath:  output,
		Components:  parsed.Metadata.Statistics.ComponentsParsed,
		Connections: parsed.Metadata.Statistics.ConnectionsParsed,
	}, nil
}

func buildExport(parsed core.ParseResult, connections []*types.Connection, at time.Time) types.ModelExport {
	export := types.ModelExport{
		GeneratedAt: at,
		Metadata:    parsed.Metadata,
	}
	for _, pkg := range parsed.Packages {
		export.Packages = append(export.Packages, packageRecord(pkg))
	}
	for _, connection := range connections {
		export.Connections = append(export.Connections, connectionRecord(connection))
	}
	return export
}

func packageRecord(pkg *types.Package) types.PackageRecord {
	record := types.PackageRecord{Path: pkg.FullPath}
	for _, component := range pkg.Components {
		record.Components = append(record.Components, componentRecord(component))
	}
	for _, iface := range pkg.Interfaces {
		record.Interfaces = append(record.Interfaces, interfaceRecord(iface))
	}
	for _, sub := range pkg.SubPackages {
		record.SubPackages = append(record.SubPackages, packageRecord(sub))
	}
	return record
}

func componentRecord(component *types.Component) types.ComponentRecord {
	record := types.ComponentRecord{
		UUID: component.UUID.String(),
		Name: component.ShortName,
		Kind: string(component.Kind),
	}
	for _, port := range component.Ports {
		portRecord := types.PortRecord{
			UUID:      port.UUID.String(),
			Name:      port.ShortName,
			Direction: string(port.Direction),
		}
		if port.Interface != nil {
			portRecord.Interface = port.Interface.FullPath()
		} else {
			portRecord.Interface = port.InterfaceRef
		}
		record.Ports = append(record.Ports, portRecord)
	}
	return record
}

func interfaceRecord(iface *types.Interface) types.InterfaceRecord {
	record := types.InterfaceRecord{Name: iface.ShortName, Kind: string(iface.Kind)}
	for _, element := range iface.DataElements {
		record.DataElements = append(record.DataElements, element.Name)
	}
	for _, operation := range iface.Operations {
		record.Operations = append(record.Operations, operation.Name)
	}
	return record
}

func connectionRecord(connection *types.Connection) types.ConnectionRecord {
	return types.ConnectionRecord{
		Name:      connection.ShortName,
		Kind:      string(connection.Kind),
		Provider:  endpointRecord(connection.Provider),
		Requester: endpointRecord(connection.Requester),
	}
}

func endpointRecord(endpoint types.Endpoint) types.EndpointRecord {
	record := types.EndpointRecord{
		ComponentRef: endpoint.ComponentRef,
		PortRef:      endpoint.PortRef,
		Resolved:     endpoint.Resolved,
	}
	if endpoint.Resolved {
		record.Component = endpoint.ComponentUUID.String()
		record.Port = endpoint.PortUUID.String()
	}
	return record
}
