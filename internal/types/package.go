package types

import "strings"

// Package is one AR-PACKAGE node. FullPath is the slash-joined chain
// of short names from the root package down, with no leading slash.
type Package struct {
	Element
	FullPath    string
	Components  []*Component
	SubPackages []*Package
	Interfaces  []*Interface
}

// NewPackage builds a package under parentPath. An empty parentPath
// marks a root package, whose full path is its own short name.
func NewPackage(shortName string, parentPath string) *Package {
	fullPath := shortName
	if parentPath != "" {
		fullPath = parentPath + "/" + shortName
	}
	return &Package{Element: NewElement(shortName), FullPath: fullPath}
}

func (p *Package) PathSegments() []string {
	if p.FullPath == "" {
		return nil
	}
	return strings.Split(p.FullPath, "/")
}

func (p *Package) Depth() int {
	return len(p.PathSegments())
}

// AddComponent appends the component and stamps its package path.
func (p *Package) AddComponent(component *Component) {
	component.PackagePath = p.FullPath
	p.Components = append(p.Components, component)
}

// AddInterface appends the interface and stamps its package path.
func (p *Package) AddInterface(iface *Interface) {
	iface.PackagePath = p.FullPath
	p.Interfaces = append(p.Interfaces, iface)
}

// AllComponents returns the package's components in document order.
// With recursive set, sub-package components follow their parent's.
func (p *Package) AllComponents(recursive bool) []*Component {
	components := append([]*Component(nil), p.Components...)
	if recursive {
		for _, sub := range p.SubPackages {
			components = append(components, sub.AllComponents(true)...)
		}
	}
	return components
}

// FindComponent returns the first component with the given short name,
// or nil. Direct children are searched before sub-packages.
func (p *Package) FindComponent(name string, recursive bool) *Component {
	for _, component := range p.Components {
		if component.ShortName == name {
			return component
		}
	}
	if recursive {
		for _, sub := range p.SubPackages {
			if found := sub.FindComponent(name, true); found != nil {
				return found
			}
		}
	}
	return nil
}
