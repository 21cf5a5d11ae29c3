package core

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/antchfx/xmlquery"
	"github.com/rs/zerolog/log"

	"arxml-viewer/internal/arxpath"
	"arxml-viewer/internal/ports"
	"arxml-viewer/internal/types"
)

// ParserOptions control the optional parsing stages. With
// ResolveReferences disabled the parser stops after the structural
// pass; with ParseInterfaces disabled interface definitions are left
// out of the model and ports keep only their raw reference text.
type ParserOptions struct {
	ResolveReferences bool
	ParseInterfaces   bool
}

func DefaultParserOptions() ParserOptions {
	return ParserOptions{ResolveReferences: true, ParseInterfaces: true}
}

// Parser builds the in-memory AUTOSAR model from one ARXML document.
// ParseFile makes two passes: a structural walk that creates packages,
// components, ports and interfaces, then a resolution pass that wires
// connector endpoints and interface references by UUID. A Parser is
// not safe for concurrent use; every ParseFile call replaces the
// connection state left by the previous one.
type Parser struct {
	Documents ports.DocumentPort
	Options   ParserOptions

	connections []*types.Connection
}

func NewParser(documents ports.DocumentPort, options ParserOptions) *Parser {
	return &Parser{Documents: documents, Options: options}
}

// ParseResult is the package forest plus the metadata record for one
// parse run.
type ParseResult struct {
	Packages []*types.Package
	Metadata types.ParseMetadata
}

// parseRun carries the per-call state through the structural walk: the
// namespace-aware query helper, the counters, and the flat element
// lists the resolution pass indexes.
type parseRun struct {
	query *arxpath.Query
	stats *types.Statistics
	debug *types.DebugCounters

	components   []*types.Component
	interfaces   []*types.Interface
	compositions []compositionRecord
}

// compositionRecord pairs a composition component with the raw
// connector references found inside it. Connectors stay textual until
// the resolution pass because their targets may appear later in the
// document.
type compositionRecord struct {
	component  *types.Component
	connectors []connectorRecord
}

type connectorRecord struct {
	shortName string
	kind      types.ConnectorKind
	provider  endpointRecord
	requester endpointRecord
}

// endpointRecord is one unresolved connector endpoint. An empty
// componentRef addresses the composition that owns the connector, the
// convention delegation and pass-through connectors use for their
// outer ports.
type endpointRecord struct {
	componentRef string
	portRef      string
}

// ParseFile loads and parses the document at path. It fails only when
// the file cannot be opened or is not well-formed XML; everything the
// walk does not recognize inside a well-formed document is skipped and
// counted instead.
func (p *Parser) ParseFile(ctx context.Context, path string) (ParseResult, error) {
	p.connections = nil
	if p.Documents == nil {
		return ParseResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("parser requires a document port")
	}

	start := time.Now()
	loaded, err := p.Documents.Load(path)
	if err != nil {
		return ParseResult{}, err
	}

	root := arxpath.RootElement(loaded.Doc)
	if root == nil {
		return ParseResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document has no root element: " + path)
	}

	namespaces := arxpath.CollectNamespaces(loaded.Doc)
	run := &parseRun{
		query: arxpath.NewQuery(namespaces),
		stats: &types.Statistics{},
		debug: &types.DebugCounters{},
	}

	var packages []*types.Package
	for _, node := range run.query.FindElements(root, "AR-PACKAGES/AR-PACKAGE") {
		packages = append(packages, p.parsePackage(run, node, ""))
	}

	if p.Options.ResolveReferences {
		resolver := newReferenceResolver(run.components, run.interfaces)
		if p.Options.ParseInterfaces {
			resolver.resolveInterfaces()
		}
		p.connections = resolver.resolveConnections(ctx, run.compositions, run.debug)
		run.stats.ConnectionsParsed = len(p.connections)
	}
	run.stats.ParseTime = time.Since(start)

	result := ParseResult{
		Packages: packages,
		Metadata: types.ParseMetadata{
			FilePath:       path,
			FileSize:       loaded.Size,
			AutosarVersion: DetectAutosarVersion(root),
			Namespaces:     namespaces.Map(),
			Statistics:     *run.stats,
			Debug:          *run.debug,
		},
	}

	log.Ctx(ctx).Debug().
		Str("file", path).
		Int("packages", run.stats.PackagesParsed).
		Int("components", run.stats.ComponentsParsed).
		Int("ports", run.stats.PortsParsed).
		Int("connections", run.stats.ConnectionsParsed).
		Dur("elapsed", run.stats.ParseTime).
		Msg("arxml parse completed")
	return result, nil
}

// ParsedConnections returns the connections resolved by the most
// recent ParseFile call, in document order. The slice is empty before
// the first call and after a failed one.
func (p *Parser) ParsedConnections() []*types.Connection {
	return p.connections
}

func (p *Parser) parsePackage(run *parseRun, node *xmlquery.Node, parentPath string) *types.Package {
	pkg := types.NewPackage(p.shortName(run, node), parentPath)
	pkg.Desc = run.query.Text(node, "DESC/L-2", "")
	run.stats.PackagesParsed++

	if elements := run.query.FindElement(node, "ELEMENTS"); elements != nil {
		p.parseElements(run, elements, pkg)
	}
	for _, sub := range run.query.FindElements(node, "SUB-PACKAGES/AR-PACKAGE") {
		pkg.SubPackages = append(pkg.SubPackages, p.parsePackage(run, sub, pkg.FullPath))
	}
	return pkg
}

// parseElements dispatches the children of an ELEMENTS container by
// their local tag name. Tags outside the known component and interface
// sets are counted and skipped, never guessed at.
func (p *Parser) parseElements(run *parseRun, elements *xmlquery.Node, pkg *types.Package) {
	for child := elements.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		if kind, ok := types.ComponentKindForTag(child.Data); ok {
			component := p.parseComponent(run, child, kind)
			pkg.AddComponent(component)
			run.components = append(run.components, component)
			continue
		}
		if kind, ok := types.InterfaceKindForTag(child.Data); ok {
			if !p.Options.ParseInterfaces {
				continue
			}
			iface := p.parseInterface(run, child, kind)
			pkg.AddInterface(iface)
			run.interfaces = append(run.interfaces, iface)
			continue
		}
		run.debug.ElementsSkipped++
	}
}

func (p *Parser) parseComponent(run *parseRun, node *xmlquery.Node, kind types.ComponentKind) *types.Component {
	component := types.NewComponent(p.shortName(run, node), kind)
	component.Desc = run.query.Text(node, "DESC/L-2", "")
	component.Category = run.query.Text(node, "CATEGORY", "")
	run.stats.ComponentsParsed++

	if portsNode := run.query.FindElement(node, "PORTS"); portsNode != nil {
		p.parsePorts(run, portsNode, component)
	}
	if component.IsComposition() {
		run.debug.CompositionsFound++
		p.parseCompositionInternals(run, node, component)
	}
	return component
}

// parsePorts walks the PORTS container in document order so the model
// preserves the interleaving of provided and required ports.
func (p *Parser) parsePorts(run *parseRun, portsNode *xmlquery.Node, component *types.Component) {
	for child := portsNode.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		direction, ok := types.PortDirectionForTag(child.Data)
		if !ok {
			run.debug.PortsSkipped++
			continue
		}
		component.AddPort(p.parsePort(run, child, direction))
		run.stats.PortsParsed++
	}
}

func (p *Parser) parsePort(run *parseRun, node *xmlquery.Node, direction types.PortDirection) *types.Port {
	port := types.NewPort(p.shortName(run, node), direction)
	port.Desc = run.query.Text(node, "DESC/L-2", "")
	for _, path := range interfaceRefPaths(direction) {
		if ref := run.query.Text(node, path, ""); ref != "" {
			port.InterfaceRef = ref
			break
		}
	}
	return port
}

// interfaceRefPaths lists the TREF elements that can carry a port's
// interface reference. PR ports fall back to the one-sided forms some
// tools emit.
func interfaceRefPaths(direction types.PortDirection) []string {
	switch direction {
	case types.PortDirectionProvided:
		return []string{"PROVIDED-INTERFACE-TREF"}
	case types.PortDirectionRequired:
		return []string{"REQUIRED-INTERFACE-TREF"}
	default:
		return []string{
			"PROVIDED-REQUIRED-INTERFACE-TREF",
			"PROVIDED-INTERFACE-TREF",
			"REQUIRED-INTERFACE-TREF",
		}
	}
}

func (p *Parser) parseInterface(run *parseRun, node *xmlquery.Node, kind types.InterfaceKind) *types.Interface {
	iface := types.NewInterface(p.shortName(run, node), kind)
	iface.Desc = run.query.Text(node, "DESC/L-2", "")
	run.stats.InterfacesParsed++

	switch kind {
	case types.InterfaceKindClientServer:
		for _, operationNode := range run.query.FindElements(node, "OPERATIONS/CLIENT-SERVER-OPERATION") {
			iface.Operations = append(iface.Operations, p.parseOperation(run, operationNode))
		}
	case types.InterfaceKindSenderReceiver, types.InterfaceKindNvData:
		for _, elementNode := range run.query.FindElements(node, "DATA-ELEMENTS/VARIABLE-DATA-PROTOTYPE") {
			iface.DataElements = append(iface.DataElements, types.DataElement{
				Name:    run.query.Text(elementNode, "SHORT-NAME", ""),
				TypeRef: run.query.Text(elementNode, "TYPE-TREF", ""),
			})
		}
	}
	return iface
}

func (p *Parser) parseOperation(run *parseRun, node *xmlquery.Node) types.Operation {
	operation := types.Operation{Name: run.query.Text(node, "SHORT-NAME", "")}
	for _, argumentNode := range run.query.FindElements(node, "ARGUMENTS/ARGUMENT-DATA-PROTOTYPE") {
		argument := types.OperationArgument{
			Name:    run.query.Text(argumentNode, "SHORT-NAME", ""),
			TypeRef: run.query.Text(argumentNode, "TYPE-TREF", ""),
		}
		if direction, ok := types.ArgumentDirectionForTag(run.query.Text(argumentNode, "DIRECTION", "")); ok {
			argument.Direction = direction
		}
		operation.Arguments = append(operation.Arguments, argument)
	}
	return operation
}

// parseCompositionInternals collects the prototype roster and the raw
// connector references of a composition. Prototypes live on the
// component; connectors wait for the resolution pass.
func (p *Parser) parseCompositionInternals(run *parseRun, node *xmlquery.Node, component *types.Component) {
	record := compositionRecord{component: component}

	for _, prototypeNode := range run.query.FindElements(node, "COMPONENTS/SW-COMPONENT-PROTOTYPE") {
		component.Prototypes = append(component.Prototypes, types.Prototype{
			ShortName: run.query.Text(prototypeNode, "SHORT-NAME", ""),
			TypeRef:   run.query.Text(prototypeNode, "TYPE-TREF", ""),
		})
	}

	if connectors := run.query.FindElement(node, "CONNECTORS"); connectors != nil {
		for child := connectors.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			kind, ok := types.ConnectorKindForTag(child.Data)
			if !ok {
				continue
			}
			record.connectors = append(record.connectors, p.parseConnector(run, child, kind))
		}
	}
	run.compositions = append(run.compositions, record)
}

func (p *Parser) parseConnector(run *parseRun, node *xmlquery.Node, kind types.ConnectorKind) connectorRecord {
	record := connectorRecord{shortName: p.shortName(run, node), kind: kind}
	switch kind {
	case types.ConnectorKindAssembly:
		record.provider = endpointRecord{
			componentRef: run.query.Text(node, "PROVIDER-IREF/CONTEXT-COMPONENT-REF", ""),
			portRef:      run.query.Text(node, "PROVIDER-IREF/TARGET-P-PORT-REF", ""),
		}
		record.requester = endpointRecord{
			componentRef: run.query.Text(node, "REQUESTER-IREF/CONTEXT-COMPONENT-REF", ""),
			portRef:      run.query.Text(node, "REQUESTER-IREF/TARGET-R-PORT-REF", ""),
		}
	case types.ConnectorKindDelegation:
		// The inner endpoint sits below an instance-ref wrapper whose
		// name depends on the port side, hence the descendant queries.
		if inner := run.query.FindElement(node, "INNER-PORT-IREF"); inner != nil {
			portRef := run.query.Text(inner, ".//TARGET-P-PORT-REF", "")
			if portRef == "" {
				portRef = run.query.Text(inner, ".//TARGET-R-PORT-REF", "")
			}
			record.provider = endpointRecord{
				componentRef: run.query.Text(inner, ".//CONTEXT-COMPONENT-REF", ""),
				portRef:      portRef,
			}
		}
		record.requester = endpointRecord{portRef: run.query.Text(node, "OUTER-PORT-REF", "")}
	case types.ConnectorKindPassThrough:
		record.provider = endpointRecord{portRef: run.query.Text(node, "PROVIDED-OUTER-PORT-REF", "")}
		record.requester = endpointRecord{portRef: run.query.Text(node, "REQUIRED-OUTER-PORT-REF", "")}
	}
	return record
}

// shortName reads an element's SHORT-NAME child. A missing name is
// counted and replaced by an empty string so the walk keeps going.
func (p *Parser) shortName(run *parseRun, node *xmlquery.Node) string {
	name := run.query.Text(node, "SHORT-NAME", "")
	if name == "" {
		run.debug.MissingShortNames++
	}
	return name
}
