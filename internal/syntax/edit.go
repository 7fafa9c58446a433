package syntax

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/position"
	"ghostls/internal/protocol"
)

// LineStarts records the byte offset of the first character of each line
// in a text, so repeated Position->byte conversions during a batch of
// changes don't each re-scan from the start (design note: "an
// implementer should cache a line_starts vector per document or
// recompute once per batch of changes").
type LineStarts []int

// ComputeLineStarts scans text once and returns the byte offset of every
// line start, including offset 0 for line 0.
func ComputeLineStarts(text string) LineStarts {
	starts := LineStarts{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// ByteOffset converts a Position to a byte offset using the cached line
// starts and UTF-16-aware column conversion on that one line.
func (ls LineStarts) ByteOffset(text string, pos protocol.Position) int {
	line := int(pos.Line)
	if line >= len(ls) {
		return len(text)
	}
	lineStart := ls[line]
	lineEnd := len(text)
	if line+1 < len(ls) {
		lineEnd = ls[line+1]
	}
	lineText := text[lineStart:lineEnd]
	lineText = strings.TrimRight(lineText, "\n")
	lineText = strings.TrimRight(lineText, "\r")
	return lineStart + position.UTF16ToByteOffset(lineText, int(pos.Character))
}

// pointFor converts a byte offset into a tree-sitter row/column point.
// The column is the byte distance from the line start, since tree-sitter
// points are measured in bytes along the row, matching the byte offsets
// this package otherwise works in.
func pointFor(ls LineStarts, byteOffset int) sitter.Point {
	// Binary search would be overkill for typical line counts per edit;
	// callers only need this once or twice per change.
	line := 0
	for line+1 < len(ls) && ls[line+1] <= byteOffset {
		line++
	}
	return sitter.Point{Row: uint(line), Column: uint(byteOffset - ls[line])}
}

// NewEndPoint computes the end point of inserted text given its start
// point, per spec §4.6: "the new-end point is computed from start plus
// the number of newlines in change.text and the length of the final
// line."
func NewEndPoint(start sitter.Point, insertedText string) sitter.Point {
	newlines := strings.Count(insertedText, "\n")
	if newlines == 0 {
		return sitter.Point{Row: start.Row, Column: start.Column + uint(len(insertedText))}
	}
	lastNewline := strings.LastIndexByte(insertedText, '\n')
	lastLineLen := len(insertedText) - lastNewline - 1
	return sitter.Point{Row: start.Row + uint(newlines), Column: uint(lastLineLen)}
}

// BuildInputEdit converts one TextDocumentContentChangeEvent with a
// range into the InputEdit tree-sitter needs to incrementally reparse,
// computing all byte offsets against the pre-edit text per the design
// note ("computed against the pre-edit text").
func BuildInputEdit(preEditText string, ls LineStarts, change protocol.TextDocumentContentChangeEvent) sitter.InputEdit {
	r := *change.Range
	startByte := ls.ByteOffset(preEditText, r.Start)
	oldEndByte := ls.ByteOffset(preEditText, r.End)
	startPoint := sitter.Point{Row: uint(r.Start.Line), Column: uint(startByte - ls[r.Start.Line])}
	oldEndLine := int(r.End.Line)
	oldEndColBase := 0
	if oldEndLine < len(ls) {
		oldEndColBase = ls[oldEndLine]
	}
	oldEndPoint := sitter.Point{Row: uint(r.End.Line), Column: uint(oldEndByte - oldEndColBase)}

	newEndByte := startByte + len(change.Text)
	newEndPoint := NewEndPoint(startPoint, change.Text)

	return sitter.InputEdit{
		StartByte:      uint(startByte),
		OldEndByte:     uint(oldEndByte),
		NewEndByte:     uint(newEndByte),
		StartPosition:  startPoint,
		OldEndPosition: oldEndPoint,
		NewEndPosition: newEndPoint,
	}
}

// ApplyTextEdit returns the text that results from replacing the byte
// span [startByte, oldEndByte) with newText; used to build the
// post-edit document text alongside BuildInputEdit so both stay
// consistent with the same pre-edit line-starts cache.
func ApplyTextEdit(text string, startByte, oldEndByte int, newText string) string {
	var b strings.Builder
	b.Grow(len(text) - (oldEndByte - startByte) + len(newText))
	b.WriteString(text[:startByte])
	b.WriteString(newText)
	b.WriteString(text[oldEndByte:])
	return b.String()
}
