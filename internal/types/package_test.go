package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackagePaths(t *testing.T) {
	root := NewPackage("Root", "")
	assert.Equal(t, "Root", root.FullPath)
	assert.Equal(t, []string{"Root"}, root.PathSegments())
	assert.Equal(t, 1, root.Depth())

	child := NewPackage("Child", root.FullPath)
	assert.Equal(t, "Root/Child", child.FullPath)
	assert.Equal(t, []string{"Root", "Child"}, child.PathSegments())
	assert.Equal(t, 2, child.Depth())
}

func TestAddComponentStampsPackagePath(t *testing.T) {
	pkg := NewPackage("Sensors", "")
	component := NewComponent("TempSensor", ComponentKindApplication)
	pkg.AddComponent(component)

	require.Len(t, pkg.Components, 1)
	assert.Equal(t, "Sensors", component.PackagePath)
}

func TestAddInterfaceStampsPackagePath(t *testing.T) {
	pkg := NewPackage("Interfaces", "")
	iface := NewInterface("TempIf", InterfaceKindSenderReceiver)
	pkg.AddInterface(iface)

	require.Len(t, pkg.Interfaces, 1)
	assert.Equal(t, "Interfaces", iface.PackagePath)
	assert.Equal(t, "Interfaces/TempIf", iface.FullPath())
}

func TestAllComponentsRecursive(t *testing.T) {
	root := NewPackage("Root", "")
	sub := NewPackage("Sub", root.FullPath)
	root.SubPackages = append(root.SubPackages, sub)

	root.AddComponent(NewComponent("A", ComponentKindApplication))
	root.AddComponent(NewComponent("B", ComponentKindService))
	sub.AddComponent(NewComponent("C", ComponentKindApplication))

	direct := root.AllComponents(false)
	require.Len(t, direct, 2)

	all := root.AllComponents(true)
	require.Len(t, all, 3)
	// Parent components come before sub-package components.
	assert.Equal(t, "A", all[0].ShortName)
	assert.Equal(t, "B", all[1].ShortName)
	assert.Equal(t, "C", all[2].ShortName)
}

func TestFindComponent(t *testing.T) {
	root := NewPackage("Root", "")
	sub := NewPackage("Sub", root.FullPath)
	root.SubPackages = append(root.SubPackages, sub)
	sub.AddComponent(NewComponent("Nested", ComponentKindApplication))

	assert.Nil(t, root.FindComponent("Nested", false))
	found := root.FindComponent("Nested", true)
	require.NotNil(t, found)
	assert.Equal(t, "Nested", found.ShortName)
	assert.Nil(t, root.FindComponent("Missing", true))
}

func TestElementIdentitiesAreUnique(t *testing.T) {
	first := NewPackage("Same", "")
	second := NewPackage("Same", "")
	assert.NotEqual(t, first.UUID, second.UUID)
}
