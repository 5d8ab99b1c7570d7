package lsp

import (
	"strings"

	"github.com/goccy/go-json"

	"wireweave/internal/lexer"
	"wireweave/internal/registry"
	"wireweave/internal/source"
	"wireweave/internal/token"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params hoverParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	text, ok := s.documentText(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}
	file := source.NewFile(uriToPath(params.TextDocument.URI), []byte(text))
	result := buildHover(file, s.reg, params.Position)
	if result == nil {
		return s.sendResponse(msg.ID, nil)
	}
	return s.sendResponse(msg.ID, result)
}

// buildHover describes the word under pos: a component, an attribute or an
// enum value keyword. Anything else yields nil.
func buildHover(file *source.File, reg *registry.Registry, pos position) *hover {
	if file == nil {
		return nil
	}
	if reg == nil {
		reg = registry.Default()
	}
	offset := offsetForPositionInFile(file, pos)
	tok, ok := wordAtOffset(lexer.Tokenize(file, lexer.Options{}), offset)
	if !ok {
		return nil
	}
	value := hoverMarkdown(reg, tok.Text)
	if value == "" {
		return nil
	}
	rng := rangeForSpan(file, tok.Span)
	return &hover{
		Contents: markupContent{Kind: "markdown", Value: value},
		Range:    &rng,
	}
}

// wordAtOffset finds the identifier-like token touching offset. A cursor
// right after the last character still counts.
func wordAtOffset(tokens []token.Token, offset uint32) (token.Token, bool) {
	var (
		best  token.Token
		found bool
	)
	for _, tok := range tokens {
		if tok.Span.Start > offset {
			break
		}
		if !isWordToken(tok) || offset > tok.Span.End {
			continue
		}
		best, found = tok, true
		if offset < tok.Span.End {
			break
		}
	}
	return best, found
}

func isWordToken(tok token.Token) bool {
	switch tok.Kind {
	case token.Ident, token.KwTrue, token.KwFalse, token.NumberLit:
		return true
	}
	return false
}

func hoverMarkdown(reg *registry.Registry, word string) string {
	if comp, ok := reg.LookupComponent(word); ok {
		return componentMarkdown(comp)
	}
	if attr, ok := reg.LookupAttribute(word); ok {
		return attributeMarkdown(attr)
	}
	if registry.IsValueKeyword(word) {
		attrs := reg.AttributesWithValue(word)
		if len(attrs) == 0 {
			return ""
		}
		names := make([]string, len(attrs))
		for i, a := range attrs {
			names[i] = a.Name
		}
		return "**" + word + "** _(value)_\n\nUsed in: " + strings.Join(names, ", ")
	}
	return ""
}

func componentMarkdown(c *registry.Component) string {
	var b strings.Builder
	b.WriteString("**" + c.Name + "** _(" + registry.CategoryLabel(c.Category) + ")_")
	if c.Description != "" {
		b.WriteString("\n\n" + c.Description)
	}
	if c.Example != "" {
		b.WriteString("\n\n```wireweave\n" + c.Example + "\n```")
	}
	if len(c.Attributes) > 0 {
		b.WriteString("\n\nAttributes: " + strings.Join(c.Attributes, ", "))
	}
	return b.String()
}

func attributeMarkdown(a *registry.Attribute) string {
	var b strings.Builder
	b.WriteString("**" + a.Name + "** _(attribute)_")
	if a.Description != "" {
		b.WriteString("\n\n" + a.Description)
	}
	b.WriteString("\n\n`" + registry.FormatAttributeValues(a) + "`")
	if a.Example != "" {
		b.WriteString("\n\nExample: `" + a.Example + "`")
	}
	return b.String()
}
