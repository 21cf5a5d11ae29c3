// Package arxpath provides namespace handling and never-failing path
// lookups over parsed ARXML documents.
//
// XPath 1.0 cannot address elements living in an unnamed default
// namespace: an unprefixed name in an expression only matches nodes
// with no namespace at all. ARXML files commonly declare the AUTOSAR
// schema as the default namespace, so every plain query against them
// would come back empty. The resolver binds the namespace the
// document's elements live in to the synthetic prefix "ar", and the
// query helper rewrites expressions to use it. Matching is by URI, so
// the rewritten expressions also work for documents that picked an
// explicit prefix of their own.
package arxpath

import "github.com/antchfx/xmlquery"

// DefaultPrefix is the synthetic prefix bound to the namespace of the
// document's elements.
const DefaultPrefix = "ar"

// Namespaces is the prefix to URI mapping declared on a document root.
type Namespaces struct {
	prefixes   map[string]string
	defaultURI string
}

// CollectNamespaces reads the xmlns declarations from the document's
// root element and binds DefaultPrefix to the content namespace: the
// declared default namespace when there is one, otherwise the root
// element's own namespace. A declaration that already uses the prefix
// is kept as written. Declarations on nested elements are not
// collected; ARXML declares its namespaces on the root. A document
// without namespaces yields an empty mapping, which is not an error.
func CollectNamespaces(doc *xmlquery.Node) Namespaces {
	ns := Namespaces{prefixes: map[string]string{}}
	root := RootElement(doc)
	if root == nil {
		return ns
	}
	for _, attr := range root.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			ns.prefixes[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			ns.defaultURI = attr.Value
		}
	}
	if _, declared := ns.prefixes[DefaultPrefix]; !declared {
		switch {
		case ns.defaultURI != "":
			ns.prefixes[DefaultPrefix] = ns.defaultURI
		case root.NamespaceURI != "":
			ns.prefixes[DefaultPrefix] = root.NamespaceURI
		}
	}
	return ns
}

// RootElement returns the document's root element, or the node itself
// when already given an element. Nil in, nil out.
func RootElement(node *xmlquery.Node) *xmlquery.Node {
	if node == nil {
		return nil
	}
	if node.Type == xmlquery.ElementNode {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}

// ContentURI returns the namespace bound to DefaultPrefix, or "" for
// documents whose elements carry no namespace. Auto-qualification is
// active exactly when this is non-empty.
func (n Namespaces) ContentURI() string {
	return n.prefixes[DefaultPrefix]
}

// DefaultURI returns the explicitly declared default namespace, or "".
func (n Namespaces) DefaultURI() string {
	return n.defaultURI
}

// Map returns a copy of the mapping, with the content namespace
// reachable under DefaultPrefix, in the form the expression compiler
// takes.
func (n Namespaces) Map() map[string]string {
	out := make(map[string]string, len(n.prefixes))
	for prefix, uri := range n.prefixes {
		out[prefix] = uri
	}
	return out
}
