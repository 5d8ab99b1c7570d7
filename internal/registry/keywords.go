package registry

import (
	"maps"
	"slices"
)

var categoryLabels = map[Category]string{
	CategoryLayout:     "Layout",
	CategoryContainer:  "Container",
	CategoryGrid:       "Grid",
	CategoryText:       "Text",
	CategoryInput:      "Input",
	CategoryDisplay:    "Display",
	CategoryData:       "Data",
	CategoryFeedback:   "Feedback",
	CategoryOverlay:    "Overlay",
	CategoryNavigation: "Navigation",
}

// CategoryLabel returns the display label of a category ("Layout", "Input", ...).
func CategoryLabel(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return c.String()
}

// valueKeywords are bare words that appear as attribute values.
var valueKeywords = []string{
	// booleans
	"true", "false",
	// button variants
	"primary", "secondary", "outline", "ghost",
	// status variants
	"success", "danger", "warning", "info", "default",
	// sizes
	"xs", "sm", "md", "lg", "xl", "base", "2xl", "3xl",
	// flex alignment
	"start", "center", "end", "between", "around", "evenly", "stretch", "baseline",
	// positions
	"left", "right", "top", "bottom",
	"top-left", "top-center", "top-right",
	"bottom-left", "bottom-center", "bottom-right",
	// sizing
	"full", "auto", "screen", "fit",
	// font weights
	"normal", "medium", "semibold", "bold",
	// input types
	"text", "email", "password", "number", "tel", "url", "search", "date",
	// flex direction
	"row", "column", "row-reverse", "column-reverse",
	// list
	"none", "nowrap",
}

var valueKeywordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(valueKeywords))
	for _, kw := range valueKeywords {
		set[kw] = struct{}{}
	}
	return set
}()

// ValueKeywords returns the value keywords in declaration order.
func ValueKeywords() []string {
	return slices.Clone(valueKeywords)
}

// IsValueKeyword reports whether word is a known value keyword (case-sensitive).
func IsValueKeyword(word string) bool {
	_, ok := valueKeywordSet[word]
	return ok
}

var commonNumbers = []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24, 32, 48, 64}

// CommonNumbers returns number suggestions for numeric attributes.
func CommonNumbers() []int {
	return slices.Clone(commonNumbers)
}

// spacingScale maps spacing steps to pixels (4px base).
var spacingScale = map[int]string{
	0:  "0px",
	1:  "4px",
	2:  "8px",
	3:  "12px",
	4:  "16px",
	5:  "20px",
	6:  "24px",
	8:  "32px",
	10: "40px",
	12: "48px",
	16: "64px",
	20: "80px",
	24: "96px",
}

// SpacingScale returns a copy of the spacing scale.
func SpacingScale() map[int]string {
	return maps.Clone(spacingScale)
}

// SpacingSteps returns the spacing scale keys in ascending order.
func SpacingSteps() []int {
	return slices.Sorted(maps.Keys(spacingScale))
}
