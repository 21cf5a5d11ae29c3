package arxpath

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/rs/zerolog/log"
)

// Query answers path lookups relative to any element of one document.
// The public methods never fail: a bad expression, a nil parent, or a
// namespace mismatch all come back as "no match" with a debug log,
// which is what browsing hand-edited ARXML tolerates. The explicit
// error lives on the internal run method only.
type Query struct {
	ns Namespaces

	mu       sync.Mutex
	compiled map[string]*xpath.Expr
}

func NewQuery(ns Namespaces) *Query {
	return &Query{ns: ns, compiled: map[string]*xpath.Expr{}}
}

// FindElement returns the first match in document order, or nil.
func (q *Query) FindElement(parent *xmlquery.Node, path string) *xmlquery.Node {
	nodes, err := q.run(parent, path)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("element query failed")
		return nil
	}
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// FindElements returns every match in document order, empty when
// nothing matches or the query fails.
func (q *Query) FindElements(parent *xmlquery.Node, path string) []*xmlquery.Node {
	nodes, err := q.run(parent, path)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("element query failed")
		return nil
	}
	return nodes
}

// Text returns the trimmed text content of the first match, or def
// when there is no match or the match holds no text.
func (q *Query) Text(parent *xmlquery.Node, path string, def string) string {
	node := q.FindElement(parent, path)
	if node == nil {
		return def
	}
	text := strings.TrimSpace(node.InnerText())
	if text == "" {
		return def
	}
	return text
}

// Attr returns the named attribute of the first match, or def when
// the element or the attribute is absent. An attribute explicitly set
// to the empty string returns "".
func (q *Query) Attr(parent *xmlquery.Node, path string, name string, def string) string {
	node := q.FindElement(parent, path)
	if node == nil {
		return def
	}
	for _, attr := range node.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return def
}

func (q *Query) run(parent *xmlquery.Node, path string) (nodes []*xmlquery.Node, err error) {
	if parent == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("query parent is nil")
	}
	expr, err := q.compile(q.Qualify(path))
	if err != nil {
		return nil, err
	}
	// The engine reports some evaluation failures by panicking; those
	// must surface as "no match", not take down a parse.
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("query evaluation failed: %v", r))
		}
	}()
	return xmlquery.QuerySelectorAll(parent, expr), nil
}

func (q *Query) compile(path string) (*xpath.Expr, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if expr, ok := q.compiled[path]; ok {
		return expr, nil
	}
	expr, err := xpath.CompileWithNS(path, q.ns.Map())
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to compile query expression").
			WithCause(err)
	}
	q.compiled[path] = expr
	return expr, nil
}

// Qualify rewrites a path expression so unprefixed element names hit
// the content namespace. Expressions pass through untouched when the
// document's elements carry no namespace. Splitting on "/" keeps the
// empty segments a "//" descent produces, so the descent survives and
// the names after it are still qualified.
func (q *Query) Qualify(path string) string {
	if q.ns.ContentURI() == "" {
		return path
	}
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = qualifySegment(segment)
	}
	return strings.Join(segments, "/")
}

// qualifySegment prefixes one path segment unless it is empty, an
// attribute or wildcard step, a relative-axis step, or already
// carries a prefix. A bracket predicate is carved off first and kept
// verbatim; only the element name is rewritten.
func qualifySegment(segment string) string {
	if segment == "" {
		return segment
	}
	switch segment[0] {
	case '@', '*', '.':
		return segment
	}
	name, predicate := segment, ""
	if idx := strings.IndexByte(segment, '['); idx >= 0 {
		name, predicate = segment[:idx], segment[idx:]
	}
	if name == "" || strings.Contains(name, ":") {
		return segment
	}
	return DefaultPrefix + ":" + name + predicate
}
