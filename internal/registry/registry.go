package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// DefaultRoot is the root component of a Wireweave document.
const DefaultRoot = "page"

// Registry is an immutable index over component and attribute descriptors.
// All methods are safe for concurrent use.
type Registry struct {
	components []*Component
	attributes []*Attribute
	byName     map[string]*Component // folded name -> component
	byNodeType map[string]*Component
	attrByName map[string]*Attribute
	root       string
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	reg, err := New(builtinComponents, builtinAttributes, DefaultRoot)
	if err != nil {
		panic(fmt.Errorf("builtin registry: %w", err))
	}
	return reg
})

// Default returns the process-wide registry built from the builtin tables.
func Default() *Registry {
	return defaultRegistry()
}

// New builds a registry. Component names must be unique after case folding,
// attribute names must be unique as written.
func New(components []Component, attributes []Attribute, root string) (*Registry, error) {
	r := &Registry{
		components: make([]*Component, 0, len(components)),
		attributes: make([]*Attribute, 0, len(attributes)),
		byName:     make(map[string]*Component, len(components)),
		byNodeType: make(map[string]*Component, len(components)),
		attrByName: make(map[string]*Attribute, len(attributes)),
		root:       root,
	}
	for i := range components {
		c := cloneComponent(&components[i])
		key := fold(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("component #%d has empty name", i)
		}
		if _, dup := r.byName[key]; dup {
			return nil, fmt.Errorf("duplicate component %q", c.Name)
		}
		r.components = append(r.components, c)
		r.byName[key] = c
		if c.NodeType != "" {
			r.byNodeType[c.NodeType] = c
		}
	}
	for i := range attributes {
		a := attributes[i]
		a.Values = slices.Clone(a.Values)
		if a.Name == "" {
			return nil, fmt.Errorf("attribute #%d has empty name", i)
		}
		if _, dup := r.attrByName[a.Name]; dup {
			return nil, fmt.Errorf("duplicate attribute %q", a.Name)
		}
		r.attributes = append(r.attributes, &a)
		r.attrByName[a.Name] = &a
	}
	return r, nil
}

func cloneComponent(c *Component) *Component {
	out := *c
	out.Attributes = slices.Clone(c.Attributes)
	out.ValidChildren = slices.Clone(c.ValidChildren)
	out.ValidParents = slices.Clone(c.ValidParents)
	return &out
}

// fold maps a component name to its lookup key. ASCII names (the common case)
// skip the Unicode caser.
func fold(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return cases.Fold().String(name)
		}
	}
	return strings.ToLower(name)
}

// Root returns the name of the root component.
func (r *Registry) Root() string {
	return r.root
}

// LookupComponent finds a component by name, ignoring case.
func (r *Registry) LookupComponent(name string) (*Component, bool) {
	c, ok := r.byName[fold(name)]
	return c, ok
}

// LookupNodeType finds a component by its AST node type ("Card", "Button").
func (r *Registry) LookupNodeType(nodeType string) (*Component, bool) {
	c, ok := r.byNodeType[nodeType]
	return c, ok
}

// LookupAttribute finds an attribute by exact name.
func (r *Registry) LookupAttribute(name string) (*Attribute, bool) {
	a, ok := r.attrByName[name]
	return a, ok
}

// IsComponent reports whether word names a component (case-insensitive).
func (r *Registry) IsComponent(word string) bool {
	_, ok := r.LookupComponent(word)
	return ok
}

// IsAttribute reports whether word names an attribute (case-sensitive).
func (r *Registry) IsAttribute(word string) bool {
	_, ok := r.attrByName[word]
	return ok
}

// Components returns every component in declaration order.
func (r *Registry) Components() []*Component {
	return slices.Clone(r.components)
}

// Attributes returns every attribute in declaration order.
func (r *Registry) Attributes() []*Attribute {
	return slices.Clone(r.attributes)
}

// ComponentNames returns component names in declaration order.
func (r *Registry) ComponentNames() []string {
	out := make([]string, len(r.components))
	for i, c := range r.components {
		out[i] = c.Name
	}
	return out
}

// AttributeNames returns attribute names in declaration order.
func (r *Registry) AttributeNames() []string {
	out := make([]string, len(r.attributes))
	for i, a := range r.attributes {
		out[i] = a.Name
	}
	return out
}

// ValidChildrenOf lists the components allowed inside name.
//
// Unknown components and components without children yield nothing. A nil
// ValidChildren list allows every component except the root; otherwise the
// listed names are resolved in order and unresolvable ones are skipped.
func (r *Registry) ValidChildrenOf(name string) []*Component {
	parent, ok := r.LookupComponent(name)
	if !ok || !parent.HasChildren {
		return nil
	}
	if parent.ValidChildren == nil {
		out := make([]*Component, 0, len(r.components))
		for _, c := range r.components {
			if c.Name != r.root {
				out = append(out, c)
			}
		}
		return out
	}
	out := make([]*Component, 0, len(parent.ValidChildren))
	for _, childName := range parent.ValidChildren {
		if child, ok := r.LookupComponent(childName); ok {
			out = append(out, child)
		}
	}
	return out
}

// IsValidChild reports whether child may be nested directly inside parent.
func (r *Registry) IsValidChild(child, parent string) bool {
	p, ok := r.LookupComponent(parent)
	if !ok || !p.HasChildren {
		return false
	}
	if p.ValidChildren == nil {
		return true
	}
	return slices.Contains(p.ValidChildren, fold(child))
}

// ComponentAttributes returns the attributes declared on a component, in
// registry order. Unknown components get every attribute.
func (r *Registry) ComponentAttributes(name string) []*Attribute {
	c, ok := r.LookupComponent(name)
	if !ok {
		return r.Attributes()
	}
	out := make([]*Attribute, 0, len(c.Attributes))
	for _, a := range r.attributes {
		if c.HasAttribute(a.Name) {
			out = append(out, a)
		}
	}
	return out
}

// ComponentsByCategory returns the components of one category in declaration order.
func (r *Registry) ComponentsByCategory(cat Category) []*Component {
	var out []*Component
	for _, c := range r.components {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// AttributesWithValue lists enum attributes accepting value among their values.
func (r *Registry) AttributesWithValue(value string) []*Attribute {
	var out []*Attribute
	for _, a := range r.attributes {
		if a.Kind == KindEnum && slices.Contains(a.Values, value) {
			out = append(out, a)
		}
	}
	return out
}

// AttributeTypeLabel renders a short type label: the kind name, or a preview
// of up to three enum values.
func AttributeTypeLabel(a *Attribute) string {
	switch a.Kind {
	case KindEnum:
		if len(a.Values) == 0 {
			return a.Kind.String()
		}
		preview := strings.Join(a.Values[:min(3, len(a.Values))], " | ")
		if len(a.Values) > 3 {
			return preview + "..."
		}
		return preview
	default:
		return a.Kind.String()
	}
}

// FormatAttributeValues renders the value line shown in hover documentation.
func FormatAttributeValues(a *Attribute) string {
	switch a.Kind {
	case KindBoolean:
		return "Type: boolean (can be omitted)"
	case KindEnum:
		if len(a.Values) > 0 {
			return "Values: " + strings.Join(a.Values, " | ")
		}
		return "Type: enum"
	default:
		return "Type: " + a.Kind.String()
	}
}
