package core

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// VersionUnknown is reported when the document carries no recognizable
// AUTOSAR schema reference.
const VersionUnknown = "Unknown"

// schemaVersions maps xsi:schemaLocation fragments to release numbers.
// The slice is ordered; the first fragment found in the attribute wins.
var schemaVersions = []struct {
	fragment string
	version  string
}{
	{fragment: "AUTOSAR_4-3-0", version: "4.3.0"},
	{fragment: "AUTOSAR_4-2-2", version: "4.2.2"},
	{fragment: "AUTOSAR_4-4-0", version: "4.4.0"},
}

// DetectAutosarVersion reads the schema release from the root element's
// xsi:schemaLocation attribute. Documents without the attribute, or
// with a schema outside the known set, report VersionUnknown.
func DetectAutosarVersion(root *xmlquery.Node) string {
	if root == nil {
		return VersionUnknown
	}
	location := schemaLocation(root)
	if location == "" {
		return VersionUnknown
	}
	for _, entry := range schemaVersions {
		if strings.Contains(location, entry.fragment) {
			return entry.version
		}
	}
	return VersionUnknown
}

// schemaLocation matches the attribute by local name only: depending on
// how the document declares the XML Schema instance namespace, the
// decoder records either the prefix or the namespace URI as the
// attribute's space.
func schemaLocation(root *xmlquery.Node) string {
	for _, attr := range root.Attr {
		if attr.Name.Local == "schemaLocation" {
			return attr.Value
		}
	}
	return ""
}
