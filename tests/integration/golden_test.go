package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arxml-viewer/internal/app"
	"arxml-viewer/internal/shared"
	"arxml-viewer/internal/types"
	"arxml-viewer/tests/testutil"
)

// TestGoldenOutlines parses the committed sample documents and compares
// a stable textual outline against golden files. If a golden file does
// not exist yet (first run), it is written so it can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenOutlines(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	tests := []struct {
		fixture string
		golden  string
	}{
		{fixture: "demo.arxml", golden: "demo.outline"},
		{fixture: "control.arxml", golden: "control.outline"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.fixture, func(t *testing.T) {
			service := app.NewService()
			result, err := service.Inspect(t.Context(), app.InspectRequest{
				Path: testutil.Fixture(t, tt.fixture),
			})
			require.NoError(t, err)
			actual := describeModel(result)

			goldenPath := filepath.Join(goldenDir, tt.golden)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				// Golden file doesn't exist yet -- write it.
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, []byte(actual), 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), actual,
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", tt.golden)
		})
	}
}

// describeModel renders a parse result in a form with no UUIDs, paths
// or timings, so the output is stable across runs and machines.
func describeModel(result app.InspectResult) string {
	var b strings.Builder
	stats := result.Metadata.Statistics
	fmt.Fprintf(&b, "version: %s\n", result.Metadata.AutosarVersion)
	fmt.Fprintf(&b, "packages: %d\n", stats.PackagesParsed)
	fmt.Fprintf(&b, "components: %d\n", stats.ComponentsParsed)
	fmt.Fprintf(&b, "ports: %d\n", stats.PortsParsed)
	fmt.Fprintf(&b, "interfaces: %d\n", stats.InterfacesParsed)
	fmt.Fprintf(&b, "connections: %d\n", stats.ConnectionsParsed)

	var walk func(pkg *types.Package, depth int)
	walk = func(pkg *types.Package, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(&b, "%s%s/\n", indent, pkg.ShortName)
		for _, iface := range pkg.Interfaces {
			fmt.Fprintf(&b, "%s  %s [%s interface]\n", indent, iface.ShortName, iface.Kind.Label())
		}
		for _, component := range pkg.Components {
			fmt.Fprintf(&b, "%s  %s [%s]\n", indent, component.ShortName, component.Kind.Label())
			for _, port := range component.Ports {
				fmt.Fprintf(&b, "%s    %s (%s)\n", indent, port.ShortName, port.Direction.Label())
			}
		}
		for _, sub := range pkg.SubPackages {
			walk(sub, depth+1)
		}
	}
	for _, pkg := range result.Packages {
		walk(pkg, 0)
	}

	for _, connection := range result.Connections {
		fmt.Fprintf(&b, "%s [%s]: %s -> %s\n",
			connection.ShortName, connection.Kind.Label(),
			describeEndpoint(connection.Provider), describeEndpoint(connection.Requester))
	}
	return b.String()
}

func describeEndpoint(endpoint types.Endpoint) string {
	label := shared.RefTail(endpoint.PortRef)
	if component := shared.RefTail(endpoint.ComponentRef); component != "" {
		label = component + "." + label
	}
	if !endpoint.Resolved {
		label += " (unresolved)"
	}
	return label
}

// TestModelStructure verifies structural properties of the control
// sample independent of the outline rendering.
func TestModelStructure(t *testing.T) {
	service := app.NewService()
	result, err := service.Inspect(t.Context(), app.InspectRequest{
		Path: testutil.Fixture(t, "control.arxml"),
	})
	require.NoError(t, err)

	t.Run("connections are fully resolved", func(t *testing.T) {
		require.Len(t, result.Connections, 2)
		kinds := map[types.ConnectorKind]struct{}{}
		for _, connection := range result.Connections {
			assert.True(t, connection.FullyResolved(), "connection %s", connection.ShortName)
			kinds[connection.Kind] = struct{}{}
		}
		assert.Contains(t, kinds, types.ConnectorKindAssembly)
		assert.Contains(t, kinds, types.ConnectorKindDelegation)
	})

	t.Run("ports keep document order", func(t *testing.T) {
		governor := result.Packages[0].FindComponent("SpeedGovernor", false)
		require.NotNil(t, governor)
		names := make([]string, 0, len(governor.Ports))
		for _, port := range governor.Ports {
			names = append(names, port.ShortName)
		}
		assert.Equal(t, []string{"SpeedIn", "Calibration"}, names)
	})

	t.Run("ports resolve their interfaces", func(t *testing.T) {
		sensor := result.Packages[0].FindComponent("SpeedSensor", false)
		require.NotNil(t, sensor)
		require.NotNil(t, sensor.Ports[0].Interface)
		assert.Equal(t, "SpeedInterface", sensor.Ports[0].Interface.ShortName)
		assert.Equal(t, "ControlSystem/SpeedInterface", sensor.Ports[0].Interface.FullPath())
	})

	t.Run("debug counters add up", func(t *testing.T) {
		debug := result.Metadata.Debug
		assert.Equal(t, 1, debug.CompositionsFound)
		assert.Equal(t, debug.PrototypesAttempted, debug.PrototypesSuccessful)
		// Only the composition itself is outside every prototype.
		assert.Equal(t, 1, debug.StandaloneComponents)
	})
}

// TestDemoDocumentCounts pins the headline numbers of the demo sample.
func TestDemoDocumentCounts(t *testing.T) {
	service := app.NewService()
	result, err := service.Inspect(t.Context(), app.InspectRequest{
		Path: testutil.Fixture(t, "demo.arxml"),
	})
	require.NoError(t, err)

	stats := result.Metadata.Statistics
	assert.Equal(t, 2, stats.PackagesParsed)
	assert.Equal(t, 6, stats.ComponentsParsed)
	assert.Equal(t, 11, stats.PortsParsed)
	assert.Empty(t, result.Connections)

	require.Len(t, result.Packages, 1)
	root := result.Packages[0]
	assert.Len(t, root.SubPackages, 1)
	assert.Len(t, root.AllComponents(true), 6)
	assert.Equal(t, 6, result.Metadata.Debug.StandaloneComponents)
}
