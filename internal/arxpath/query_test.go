package arxpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queryFixtureDefault = `<?xml version="1.0" encoding="UTF-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0">
  <AR-PACKAGES>
    <AR-PACKAGE UUID="pkg-one">
      <SHORT-NAME>  Alpha  </SHORT-NAME>
      <DESC><L-2 L="EN">First package</L-2></DESC>
    </AR-PACKAGE>
    <AR-PACKAGE>
      <SHORT-NAME>Beta</SHORT-NAME>
    </AR-PACKAGE>
  </AR-PACKAGES>
</AUTOSAR>
`

const queryFixtureBare = `<?xml version="1.0"?>
<AUTOSAR>
  <AR-PACKAGES>
    <AR-PACKAGE>
      <SHORT-NAME>Alpha</SHORT-NAME>
    </AR-PACKAGE>
  </AR-PACKAGES>
</AUTOSAR>
`

func TestQualify(t *testing.T) {
	query := NewQuery(CollectNamespaces(parseDoc(t, queryFixtureDefault)))

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"single segment", "SHORT-NAME", "ar:SHORT-NAME"},
		{"nested path", "DESC/L-2", "ar:DESC/ar:L-2"},
		{"descendant axis", ".//AR-PACKAGE", ".//ar:AR-PACKAGE"},
		{"relative step", "./SHORT-NAME", "./ar:SHORT-NAME"},
		{"dot alone", ".", "."},
		{"attribute step", "@UUID", "@UUID"},
		{"attribute after element", "AR-PACKAGE/@UUID", "ar:AR-PACKAGE/@UUID"},
		{"wildcard", "*", "*"},
		{"wildcard with predicate", "*[contains(local-name(), 'PACKAGE')]", "*[contains(local-name(), 'PACKAGE')]"},
		{"predicate preserved verbatim", "AR-PACKAGE[SHORT-NAME='Alpha']", "ar:AR-PACKAGE[SHORT-NAME='Alpha']"},
		{"already prefixed", "ar:SHORT-NAME", "ar:SHORT-NAME"},
		{"mixed prefixes", "AR-PACKAGES/ar:AR-PACKAGE", "ar:AR-PACKAGES/ar:AR-PACKAGE"},
		{"empty expression", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, query.Qualify(tt.path))
		})
	}
}

func TestQualifyWithoutDefaultNamespace(t *testing.T) {
	query := NewQuery(CollectNamespaces(parseDoc(t, queryFixtureBare)))

	for _, path := range []string{"SHORT-NAME", "DESC/L-2", ".//AR-PACKAGE"} {
		assert.Equal(t, path, query.Qualify(path))
	}
}

func TestFindElementsDocumentOrder(t *testing.T) {
	doc := parseDoc(t, queryFixtureDefault)
	query := NewQuery(CollectNamespaces(doc))

	packages := query.FindElements(doc, "AUTOSAR/AR-PACKAGES/AR-PACKAGE")
	require.Len(t, packages, 2)
	assert.Equal(t, "Alpha", query.Text(packages[0], "SHORT-NAME", ""))
	assert.Equal(t, "Beta", query.Text(packages[1], "SHORT-NAME", ""))
}

func TestFindElementMissingReturnsNil(t *testing.T) {
	doc := parseDoc(t, queryFixtureDefault)
	query := NewQuery(CollectNamespaces(doc))

	assert.Nil(t, query.FindElement(doc, "AUTOSAR/NO-SUCH-ELEMENT"))
	assert.Empty(t, query.FindElements(doc, "AUTOSAR/NO-SUCH-ELEMENT"))
}

func TestMalformedExpressionIsNoMatch(t *testing.T) {
	doc := parseDoc(t, queryFixtureDefault)
	query := NewQuery(CollectNamespaces(doc))

	assert.Nil(t, query.FindElement(doc, "///[[["))
	assert.Empty(t, query.FindElements(doc, "]broken["))
	assert.Equal(t, "fallback", query.Text(doc, "///", "fallback"))
}

func TestNilParentIsNoMatch(t *testing.T) {
	query := NewQuery(Namespaces{})

	assert.Nil(t, query.FindElement(nil, "SHORT-NAME"))
	assert.Empty(t, query.FindElements(nil, "SHORT-NAME"))
	assert.Equal(t, "d", query.Text(nil, "SHORT-NAME", "d"))
	assert.Equal(t, "d", query.Attr(nil, "SHORT-NAME", "UUID", "d"))
}

func TestTextTrimsAndDefaults(t *testing.T) {
	doc := parseDoc(t, queryFixtureDefault)
	query := NewQuery(CollectNamespaces(doc))
	pkg := query.FindElement(doc, "AUTOSAR/AR-PACKAGES/AR-PACKAGE")
	require.NotNil(t, pkg)

	assert.Equal(t, "Alpha", query.Text(pkg, "SHORT-NAME", ""))
	assert.Equal(t, "First package", query.Text(pkg, "DESC/L-2", ""))
	assert.Equal(t, "none", query.Text(pkg, "CATEGORY", "none"))
}

func TestAttr(t *testing.T) {
	doc := parseDoc(t, queryFixtureDefault)
	query := NewQuery(CollectNamespaces(doc))
	packagesNode := query.FindElement(doc, "AUTOSAR/AR-PACKAGES")
	require.NotNil(t, packagesNode)

	assert.Equal(t, "pkg-one", query.Attr(packagesNode, "AR-PACKAGE", "UUID", ""))
	assert.Equal(t, "absent", query.Attr(packagesNode, "AR-PACKAGE", "VERSION", "absent"))
}

func TestSameExpressionAcrossNamespaceStyles(t *testing.T) {
	const prefixedFixture = `<?xml version="1.0"?>
<x:AUTOSAR xmlns:x="http://autosar.org/schema/r4.0">
  <x:AR-PACKAGES>
    <x:AR-PACKAGE>
      <x:SHORT-NAME>Alpha</x:SHORT-NAME>
    </x:AR-PACKAGE>
  </x:AR-PACKAGES>
</x:AUTOSAR>
`
	// The same unqualified expression must behave identically whether
	// the schema namespace is the default, carried by a prefix, or
	// absent entirely.
	const path = "AUTOSAR/AR-PACKAGES/AR-PACKAGE/SHORT-NAME"
	for name, fixture := range map[string]string{
		"default namespace": queryFixtureDefault,
		"explicit prefix":   prefixedFixture,
		"no namespace":      queryFixtureBare,
	} {
		t.Run(name, func(t *testing.T) {
			doc := parseDoc(t, fixture)
			query := NewQuery(CollectNamespaces(doc))
			assert.Equal(t, "Alpha", query.Text(doc, path, ""))
		})
	}
}
