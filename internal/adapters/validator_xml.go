package adapters

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/rs/zerolog/log"

	"arxml-viewer/internal/arxpath"
	"arxml-viewer/internal/ports"
	"arxml-viewer/internal/types"
)

// autosarRootNames are the root element local names accepted by the
// AUTOSAR heuristic. MSRSW is the legacy pre-4.x root.
var autosarRootNames = map[string]struct{}{
	"AUTOSAR": {},
	"MSRSW":   {},
}

// ValidatorAdapter answers pre-parse sanity checks. It shares the
// document loader, so a validate-then-parse sequence on the same file
// parses the XML once. All checks are heuristics on the document
// shape, not schema validation.
type ValidatorAdapter struct {
	docs ports.DocumentPort
}

func NewValidatorAdapter(docs ports.DocumentPort) ValidatorAdapter {
	return ValidatorAdapter{docs: docs}
}

func (a ValidatorAdapter) IsValidXML(path string) bool {
	_, err := a.docs.Load(path)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("xml validity check failed")
		return false
	}
	return true
}

func (a ValidatorAdapter) IsAutosarXML(path string) bool {
	loaded, err := a.docs.Load(path)
	if err != nil {
		return false
	}
	root := arxpath.RootElement(loaded.Doc)
	if root == nil {
		return false
	}
	if _, ok := autosarRootNames[root.Data]; ok {
		return true
	}
	for _, uri := range arxpath.CollectNamespaces(loaded.Doc).Map() {
		if strings.Contains(strings.ToLower(uri), "autosar") {
			return true
		}
	}
	return false
}

// Info probes one file and reports what it found. Failures come back
// inside the record, never as an error.
func (a ValidatorAdapter) Info(path string) types.XMLInfo {
	loaded, err := a.docs.Load(path)
	if err != nil {
		return types.XMLInfo{Error: err.Error()}
	}
	root := arxpath.RootElement(loaded.Doc)
	if root == nil {
		return types.XMLInfo{Error: "document has no root element"}
	}
	version, encoding := declarationInfo(loaded.Doc)
	return types.XMLInfo{
		Valid:        true,
		RootElement:  root.Data,
		Namespace:    root.NamespaceURI,
		Encoding:     encoding,
		XMLVersion:   version,
		Namespaces:   arxpath.CollectNamespaces(loaded.Doc).Map(),
		ElementCount: countElements(root),
	}
}

// declarationInfo pulls version and encoding out of the <?xml?>
// declaration. Both default to the values the XML spec assumes for
// documents that omit them.
func declarationInfo(doc *xmlquery.Node) (string, string) {
	version, encoding := "1.0", "UTF-8"
	if doc == nil {
		return version, encoding
	}
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.DeclarationNode {
			continue
		}
		if v := child.SelectAttr("version"); v != "" {
			version = v
		}
		if e := child.SelectAttr("encoding"); e != "" {
			encoding = e
		}
		break
	}
	return version, encoding
}

func countElements(node *xmlquery.Node) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.Type == xmlquery.ElementNode {
		count = 1
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		count += countElements(child)
	}
	return count
}

var _ ports.ValidatorPort = ValidatorAdapter{}
