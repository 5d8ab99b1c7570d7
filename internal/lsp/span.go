package lsp

import (
	"fortio.org/safecast"

	"wireweave/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

func safeInt(n uint32) int {
	v, err := safecast.Conv[int](n)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return v
}

// offsetForPositionInFile переводит LSP-позицию (UTF-16) в байтовое смещение.
func offsetForPositionInFile(file *source.File, pos position) uint32 {
	if file == nil || pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	return file.OffsetForUTF16(safeUint32(pos.Line), safeUint32(pos.Character))
}

func positionForOffsetInFile(file *source.File, offset uint32) position {
	if file == nil {
		return position{}
	}
	line, char := file.UTF16Position(offset)
	return position{Line: safeInt(line), Character: safeInt(char)}
}

func rangeForSpan(file *source.File, span source.Span) lspRange {
	if file == nil {
		return lspRange{}
	}
	return lspRange{
		Start: positionForOffsetInFile(file, span.Start),
		End:   positionForOffsetInFile(file, span.End),
	}
}

func lineForOffset(file *source.File, offset uint32) int {
	return positionForOffsetInFile(file, offset).Line
}
