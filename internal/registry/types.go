package registry

import (
	"fmt"
	"slices"
)

// Category groups components for documentation and completion listings.
type Category uint8

const (
	CategoryLayout Category = iota
	CategoryGrid
	CategoryContainer
	CategoryText
	CategoryInput
	CategoryDisplay
	CategoryData
	CategoryFeedback
	CategoryOverlay
	CategoryNavigation
)

var categoryNames = [...]string{
	CategoryLayout:     "layout",
	CategoryGrid:       "grid",
	CategoryContainer:  "container",
	CategoryText:       "text",
	CategoryInput:      "input",
	CategoryDisplay:    "display",
	CategoryData:       "data",
	CategoryFeedback:   "feedback",
	CategoryOverlay:    "overlay",
	CategoryNavigation: "navigation",
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// ParseCategory resolves the lower-case category name.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Kind is the value type of an attribute.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindNumber
	KindString
	KindStringList
	KindEnum
)

var kindNames = [...]string{
	KindBoolean:    "boolean",
	KindNumber:     "number",
	KindString:     "string",
	KindStringList: "string[]",
	KindEnum:       "enum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown attribute kind %q", string(b))
}

// Component describes one DSL component.
type Component struct {
	Name        string   `json:"name" yaml:"name"`
	NodeType    string   `json:"nodeType" yaml:"nodeType"`
	Category    Category `json:"category" yaml:"category"`
	Attributes  []string `json:"attributes" yaml:"attributes"`
	HasChildren bool     `json:"hasChildren" yaml:"hasChildren"`
	Description string   `json:"description" yaml:"description"`
	Example     string   `json:"example" yaml:"example"`
	// ValidChildren == nil means any component except the root.
	ValidChildren []string `json:"validChildren,omitempty" yaml:"validChildren,omitempty"`
	// ValidParents is informational only and never enforced.
	ValidParents []string `json:"validParents,omitempty" yaml:"validParents,omitempty"`
}

// HasAttribute reports whether name is declared on the component (case-sensitive).
func (c *Component) HasAttribute(name string) bool {
	return slices.Contains(c.Attributes, name)
}

// Attribute describes one attribute name usable on components.
type Attribute struct {
	Name        string   `json:"name" yaml:"name"`
	Kind        Kind     `json:"type" yaml:"type"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty"`
	Description string   `json:"description" yaml:"description"`
	Example     string   `json:"example" yaml:"example"`
}
