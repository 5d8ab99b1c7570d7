package lsp

import (
	"sort"

	"github.com/goccy/go-json"

	"wireweave/internal/lexer"
	"wireweave/internal/source"
	"wireweave/internal/token"
)

func (s *Server) handleFoldingRange(msg *rpcMessage) error {
	var params foldingRangeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	text, ok := s.documentText(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, []foldingRange{})
	}
	file := source.NewFile(uriToPath(params.TextDocument.URI), []byte(text))
	return s.sendResponse(msg.ID, buildFoldingRanges(file))
}

// buildFoldingRanges folds matched brace blocks and multi-line block comments.
// Single-line ranges are skipped.
func buildFoldingRanges(file *source.File) []foldingRange {
	ranges := make([]foldingRange, 0)
	if file == nil || file.Len() == 0 {
		return ranges
	}
	tokens := lexer.Tokenize(file, lexer.Options{})
	for _, pair := range lexer.MatchBraces(tokens) {
		startLine := lineForOffset(file, pair.Open)
		endLine := lineForOffset(file, pair.Close)
		if startLine >= endLine {
			continue
		}
		ranges = append(ranges, foldingRange{StartLine: startLine, EndLine: endLine})
	}
	for _, tok := range tokens {
		for _, tr := range tok.Leading {
			if tr.Kind != token.TriviaBlockComment {
				continue
			}
			startLine := lineForOffset(file, tr.Span.Start)
			endLine := lineForOffset(file, spanLastOffset(tr.Span))
			if startLine >= endLine {
				continue
			}
			ranges = append(ranges, foldingRange{StartLine: startLine, EndLine: endLine, Kind: "comment"})
		}
	}
	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].StartLine == ranges[j].StartLine {
			return ranges[i].EndLine < ranges[j].EndLine
		}
		return ranges[i].StartLine < ranges[j].StartLine
	})
	return ranges
}

func spanLastOffset(span source.Span) uint32 {
	if span.End > span.Start {
		return span.End - 1
	}
	return span.End
}
