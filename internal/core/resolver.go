package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"arxml-viewer/internal/shared"
	"arxml-viewer/internal/types"
)

// referenceResolver is the second parsing pass. It indexes every
// component and interface the structural walk produced, then turns raw
// connector references into UUID-linked endpoints and attaches
// interface definitions to ports. Resolution failures are never
// errors: an endpoint that finds no target keeps its raw references
// and stays unresolved.
type referenceResolver struct {
	components []*types.Component

	componentByPath map[string]*types.Component
	componentByName map[string]*types.Component
	ifaceByPath     map[string]*types.Interface
	ifaceByName     map[string]*types.Interface
}

func newReferenceResolver(components []*types.Component, interfaces []*types.Interface) *referenceResolver {
	r := &referenceResolver{
		components:      components,
		componentByPath: map[string]*types.Component{},
		componentByName: map[string]*types.Component{},
		ifaceByPath:     map[string]*types.Interface{},
		ifaceByName:     map[string]*types.Interface{},
	}
	// On duplicate keys the first occurrence wins, keeping lookups
	// stable in document order.
	for _, component := range components {
		path := component.PackagePath + "/" + component.ShortName
		if _, ok := r.componentByPath[path]; !ok {
			r.componentByPath[path] = component
		}
		if _, ok := r.componentByName[component.ShortName]; !ok {
			r.componentByName[component.ShortName] = component
		}
	}
	for _, iface := range interfaces {
		if _, ok := r.ifaceByPath[iface.FullPath()]; !ok {
			r.ifaceByPath[iface.FullPath()] = iface
		}
		if _, ok := r.ifaceByName[iface.ShortName]; !ok {
			r.ifaceByName[iface.ShortName] = iface
		}
	}
	return r
}

// resolveInterfaces attaches interface definitions to every port whose
// reference names an interface present in the document. Ports with
// foreign or dangling references keep a nil Interface.
func (r *referenceResolver) resolveInterfaces() {
	for _, component := range r.components {
		for _, port := range component.Ports {
			if port.InterfaceRef == "" || port.Interface != nil {
				continue
			}
			port.Interface = r.interfaceByRef(port.InterfaceRef)
		}
	}
}

func (r *referenceResolver) interfaceByRef(ref string) *types.Interface {
	if iface, ok := r.ifaceByPath[shared.NormalizeRef(ref)]; ok {
		return iface
	}
	return r.ifaceByName[shared.RefTail(ref)]
}

// resolveConnections materializes the connector records collected from
// every composition. Each endpoint resolution attempt is counted;
// components no prototype points at are reported as standalone.
func (r *referenceResolver) resolveConnections(ctx context.Context, compositions []compositionRecord, debug *types.DebugCounters) []*types.Connection {
	referenced := map[uuid.UUID]struct{}{}
	var connections []*types.Connection
	for _, record := range compositions {
		roles := r.prototypeRoles(record.component, referenced)
		for _, connector := range record.connectors {
			connection := types.NewConnection(connector.shortName, connector.kind)
			connection.Provider = r.resolveEndpoint(connector.provider, record.component, roles, debug)
			connection.Requester = r.resolveEndpoint(connector.requester, record.component, roles, debug)
			connections = append(connections, connection)
		}
	}
	for _, component := range r.components {
		if _, ok := referenced[component.UUID]; !ok {
			debug.StandaloneComponents++
		}
	}
	log.Ctx(ctx).Debug().
		Int("connections", len(connections)).
		Int("standalone", debug.StandaloneComponents).
		Msg("reference resolution completed")
	return connections
}

// prototypeRoles maps a composition's prototype role names to the
// component types they instantiate. Prototypes whose TYPE-TREF matches
// nothing in the document are left out of the map.
func (r *referenceResolver) prototypeRoles(composition *types.Component, referenced map[uuid.UUID]struct{}) map[string]*types.Component {
	roles := map[string]*types.Component{}
	for _, prototype := range composition.Prototypes {
		target := r.componentByRef(prototype.TypeRef)
		if target == nil {
			continue
		}
		if _, ok := roles[prototype.ShortName]; !ok {
			roles[prototype.ShortName] = target
		}
		referenced[target.UUID] = struct{}{}
	}
	return roles
}

// resolveEndpoint resolves one endpoint against the owning composition
// and its prototype roles. Context references are tried as a role name
// first, then as a full package path, then as a bare short name. An
// empty context reference addresses the composition itself.
func (r *referenceResolver) resolveEndpoint(record endpointRecord, owner *types.Component, roles map[string]*types.Component, debug *types.DebugCounters) types.Endpoint {
	endpoint := types.Endpoint{ComponentRef: record.componentRef, PortRef: record.portRef}
	if record.componentRef == "" && record.portRef == "" {
		return endpoint
	}
	debug.PrototypesAttempted++

	target := owner
	if record.componentRef != "" {
		target = r.contextComponent(record.componentRef, roles)
	}
	if target == nil {
		return endpoint
	}
	port := target.PortByName(shared.RefTail(record.portRef))
	if port == nil {
		return endpoint
	}

	endpoint.ComponentUUID = target.UUID
	endpoint.PortUUID = port.UUID
	endpoint.Resolved = true
	debug.PrototypesSuccessful++
	return endpoint
}

func (r *referenceResolver) contextComponent(ref string, roles map[string]*types.Component) *types.Component {
	tail := shared.RefTail(ref)
	if component, ok := roles[tail]; ok {
		return component
	}
	return r.componentByRef(ref)
}

func (r *referenceResolver) componentByRef(ref string) *types.Component {
	if ref == "" {
		return nil
	}
	if component, ok := r.componentByPath[shared.NormalizeRef(ref)]; ok {
		return component
	}
	return r.componentByName[shared.RefTail(ref)]
}
