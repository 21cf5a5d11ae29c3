package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arxml-viewer/internal/app"
	"arxml-viewer/internal/shared"
	"arxml-viewer/internal/types"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Parse an ARXML document and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runInspect(ctx context.Context, path string) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{Path: path})
	if err != nil {
		return err
	}

	meta := result.Metadata
	fmt.Printf("file: %s (%d bytes, AUTOSAR %s)\n", meta.FilePath, meta.FileSize, meta.AutosarVersion)
	for _, pkg := range result.Packages {
		printPackage(pkg, 0)
	}

	stats := meta.Statistics
	fmt.Printf("parsed: %d packages, %d components, %d ports, %d interfaces in %s\n",
		stats.PackagesParsed, stats.ComponentsParsed, stats.PortsParsed,
		stats.InterfacesParsed, stats.ParseTime)

	if len(result.Connections) > 0 {
		fmt.Println("connections:")
		for _, connection := range result.Connections {
			fmt.Printf("- %s [%s]: %s -> %s\n",
				connection.ShortName, connection.Kind.Label(),
				endpointLabel(connection.Provider), endpointLabel(connection.Requester))
		}
	}
	return nil
}

func printPackage(pkg *types.Package, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s/\n", indent, pkg.ShortName)
	for _, iface := range pkg.Interfaces {
		fmt.Printf("%s  %s [%s interface]\n", indent, iface.ShortName, iface.Kind.Label())
	}
	for _, component := range pkg.Components {
		fmt.Printf("%s  %s [%s]\n", indent, component.ShortName, component.Kind.Label())
		for _, port := range component.Ports {
			fmt.Printf("%s    %s (%s)\n", indent, port.ShortName, port.Direction.Label())
		}
	}
	for _, sub := range pkg.SubPackages {
		printPackage(sub, depth+1)
	}
}

// endpointLabel renders one connector endpoint as component.port, using
// the tail of each reference. Delegation outer endpoints have no
// component ref and show the port alone.
func endpointLabel(endpoint types.Endpoint) string {
	label := shared.RefTail(endpoint.PortRef)
	if component := shared.RefTail(endpoint.ComponentRef); component != "" {
		label = component + "." + label
	}
	if !endpoint.Resolved {
		label += " (unresolved)"
	}
	return label
}
