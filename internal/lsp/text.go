package lsp

import "wireweave/internal/source"

// applyChanges применяет incremental/full изменения по порядку.
// Диапазоны в UTF-16 и считаются относительно текста после предыдущего изменения.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		file := source.NewFile("", []byte(text))
		start := int(offsetForPositionInFile(file, change.Range.Start))
		end := int(offsetForPositionInFile(file, change.Range.End))
		start = min(start, len(text))
		end = min(max(end, start), len(text))
		text = text[:start] + change.Text + text[end:]
	}
	return text
}
