package arxpath

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultNamespaceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <AR-PACKAGES/>
</AUTOSAR>
`

const prefixedNamespaceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<ar:AUTOSAR xmlns:ar="http://autosar.org/schema/r4.0">
  <ar:AR-PACKAGES/>
</ar:AUTOSAR>
`

const foreignPrefixDoc = `<?xml version="1.0" encoding="UTF-8"?>
<axml:AUTOSAR xmlns:axml="http://autosar.org/schema/r4.0">
  <axml:AR-PACKAGES/>
</axml:AUTOSAR>
`

const bareDoc = `<?xml version="1.0"?>
<AUTOSAR>
  <AR-PACKAGES/>
</AUTOSAR>
`

func parseDoc(t *testing.T, content string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlquery.Parse(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

func TestCollectNamespacesDefault(t *testing.T) {
	ns := CollectNamespaces(parseDoc(t, defaultNamespaceDoc))

	assert.Equal(t, "http://autosar.org/schema/r4.0", ns.DefaultURI())
	assert.Equal(t, "http://autosar.org/schema/r4.0", ns.ContentURI())

	mapped := ns.Map()
	assert.Equal(t, "http://autosar.org/schema/r4.0", mapped[DefaultPrefix])
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema-instance", mapped["xsi"])
}

func TestCollectNamespacesExplicitPrefix(t *testing.T) {
	ns := CollectNamespaces(parseDoc(t, prefixedNamespaceDoc))

	// No default declaration, but the elements still live in the
	// schema namespace through their prefix.
	assert.Equal(t, "", ns.DefaultURI())
	assert.Equal(t, "http://autosar.org/schema/r4.0", ns.ContentURI())
	assert.Equal(t, "http://autosar.org/schema/r4.0", ns.Map()["ar"])
}

func TestCollectNamespacesForeignPrefix(t *testing.T) {
	ns := CollectNamespaces(parseDoc(t, foreignPrefixDoc))

	// Whatever prefix the document picked, the synthetic one is bound
	// to the root's namespace so unprefixed queries keep working.
	assert.Equal(t, "http://autosar.org/schema/r4.0", ns.ContentURI())
	mapped := ns.Map()
	assert.Equal(t, "http://autosar.org/schema/r4.0", mapped["axml"])
	assert.Equal(t, "http://autosar.org/schema/r4.0", mapped[DefaultPrefix])
}

func TestCollectNamespacesNone(t *testing.T) {
	ns := CollectNamespaces(parseDoc(t, bareDoc))

	assert.Equal(t, "", ns.ContentURI())
	assert.Empty(t, ns.Map())
}

func TestCollectNamespacesNilDocument(t *testing.T) {
	ns := CollectNamespaces(nil)

	assert.Equal(t, "", ns.ContentURI())
	assert.Empty(t, ns.Map())
}

func TestMapReturnsCopy(t *testing.T) {
	ns := CollectNamespaces(parseDoc(t, defaultNamespaceDoc))
	first := ns.Map()
	first["hijacked"] = "nowhere"

	assert.NotContains(t, ns.Map(), "hijacked")
}
