package lsp

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-json"

	"wireweave/internal/lint"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

const (
	completionItemKindClass      = 7
	completionItemKindProperty   = 10
	completionItemKindEnumMember = 20
	completionItemKindConstant   = 21
	completionItemKindStruct     = 22
)

// numberSuggestions are offered after "attr=" for number attributes.
var numberSuggestions = []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 16}

var (
	attrValueRe  = regexp.MustCompile(`(\w+)\s*=\s*$`)
	lineStartRe  = regexp.MustCompile(`^\s*\w*$`)
	afterBraceRe = regexp.MustCompile(`\{\s*\w*$`)
	afterCompRe  = regexp.MustCompile(`(\w+)(?:\s+"[^"]*")?\s+\w*$`)
)

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	text, ok := s.documentText(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, completionList{Items: []completionItem{}})
	}
	s.mu.Lock()
	root := s.lintOpts.RootComponent
	s.mu.Unlock()
	file := source.NewFile(uriToPath(params.TextDocument.URI), []byte(text))
	result := buildCompletion(file, s.reg, root, params.Position)
	return s.sendResponse(msg.ID, result)
}

// buildCompletion suggests values after "attr=", components at the start of
// a line or after "{", attributes after a component name and components
// everywhere else.
func buildCompletion(file *source.File, reg *registry.Registry, root string, pos position) completionList {
	if file == nil {
		return completionList{Items: []completionItem{}}
	}
	if reg == nil {
		reg = registry.Default()
	}
	if root == "" {
		root = reg.Root()
	}
	offset := offsetForPositionInFile(file, pos)
	lineStart := file.LineStart(file.Position(offset).Line)
	before := string(file.Content[lineStart:offset])

	if m := attrValueRe.FindStringSubmatch(before); m != nil {
		if items := valueCompletions(reg, m[1]); len(items) > 0 {
			return completionList{Items: items}
		}
	}

	if lineStartRe.MatchString(before) || afterBraceRe.MatchString(before) {
		parent, nested := findParentComponent(file.Content[:offset])
		return completionList{Items: contextComponentCompletions(reg, root, parent, nested)}
	}

	if m := afterCompRe.FindStringSubmatch(before); m != nil {
		if _, ok := reg.LookupComponent(m[1]); ok {
			return completionList{Items: attributeCompletions(reg.ComponentAttributes(m[1]))}
		}
		return completionList{Items: attributeCompletions(reg.Attributes())}
	}

	return completionList{Items: componentCompletions(reg)}
}

func valueCompletions(reg *registry.Registry, attrName string) []completionItem {
	attr, ok := reg.LookupAttribute(attrName)
	if !ok {
		return nil
	}
	switch attr.Kind {
	case registry.KindEnum:
		items := make([]completionItem, 0, len(attr.Values))
		for _, v := range attr.Values {
			items = append(items, completionItem{
				Label:  v,
				Kind:   completionItemKindEnumMember,
				Detail: "value for " + attrName,
			})
		}
		return items
	case registry.KindNumber:
		items := make([]completionItem, 0, len(numberSuggestions))
		for i, n := range numberSuggestions {
			items = append(items, completionItem{
				Label:    strconv.Itoa(n),
				Kind:     completionItemKindConstant,
				Detail:   "number",
				SortText: sortKey(1, i),
			})
		}
		return items
	}
	return nil
}

// findParentComponent ищет незакрытую '{' перед курсором и возвращает имя
// компонента перед ней. nested == false означает верхний уровень.
func findParentComponent(before []byte) (name string, nested bool) {
	depth := 0
	for i := len(before) - 1; i >= 0; i-- {
		switch before[i] {
		case '}':
			depth++
		case '{':
			depth--
			if depth < 0 {
				name, _ := lint.EnclosingComponent(string(before[:i]))
				return name, true
			}
		}
	}
	return "", false
}

func contextComponentCompletions(reg *registry.Registry, root, parent string, nested bool) []completionItem {
	valid := make(map[string]struct{})
	if nested && parent != "" {
		for _, c := range reg.ValidChildrenOf(parent) {
			valid[c.Name] = struct{}{}
		}
	}
	comps := reg.Components()
	items := make([]completionItem, 0, len(comps))
	for i, c := range comps {
		recommended := false
		if !nested {
			recommended = c.Name == root
		} else {
			_, ok := valid[c.Name]
			recommended = len(valid) == 0 || ok
		}
		item := componentItem(c)
		if recommended {
			item.Kind = completionItemKindClass
			item.Detail = registry.CategoryLabel(c.Category) + " (recommended)"
			item.SortText = sortKey(0, i)
			item.Preselect = !nested
		} else {
			item.Kind = completionItemKindStruct
			item.SortText = sortKey(1, i)
		}
		items = append(items, item)
	}
	return items
}

func componentCompletions(reg *registry.Registry) []completionItem {
	comps := reg.Components()
	items := make([]completionItem, 0, len(comps))
	for i, c := range comps {
		item := componentItem(c)
		item.SortText = sortKey(1, i)
		items = append(items, item)
	}
	return items
}

func componentItem(c *registry.Component) completionItem {
	item := completionItem{
		Label:            c.Name,
		Kind:             completionItemKindClass,
		Detail:           registry.CategoryLabel(c.Category),
		InsertText:       c.Name,
		InsertTextFormat: insertPlainText,
	}
	if c.Description != "" {
		item.Documentation = &markupContent{Kind: "markdown", Value: c.Description}
	}
	if c.HasChildren {
		item.InsertText = c.Name + " {\n\t$0\n}"
		item.InsertTextFormat = insertSnippet
	}
	return item
}

func attributeCompletions(attrs []*registry.Attribute) []completionItem {
	items := make([]completionItem, 0, len(attrs))
	for _, a := range attrs {
		insert := a.Name
		switch a.Kind {
		case registry.KindString:
			insert = a.Name + `=""`
		case registry.KindNumber, registry.KindEnum:
			insert = a.Name + "="
		}
		item := completionItem{
			Label:            a.Name,
			Kind:             completionItemKindProperty,
			Detail:           a.Kind.String(),
			InsertText:       insert,
			InsertTextFormat: insertPlainText,
		}
		if a.Description != "" {
			item.Documentation = &markupContent{Kind: "markdown", Value: a.Description}
		}
		items = append(items, item)
	}
	return items
}

// sortKey держит порядок реестра внутри группы: "0_0007".
func sortKey(group, idx int) string {
	return fmt.Sprintf("%d_%04d", group, idx)
}
