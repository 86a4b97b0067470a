// File: reader.go
// Title: Mnemonic Row Reader
// Description: Splits the raw tabular mnemonic export into typed rows.
//              The export uses a fixed 7-column comma-separated schema
//              (sequence, step, instruction, three operands, comment) with
//              optional double-quoted fields. Reading is best-effort:
//              malformed rows are skipped, never raised.
// Author: WKDev
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial row reader implementation

package reader

import (
	"strconv"
	"strings"
)

// Column positions of the fixed export schema
const (
	colSeq = iota
	colStep
	colInstr
	colOperand1
	colOperand2
	colOperand3
	colComment
	columnCount
)

// minFields is the smallest field count of a usable row
const minFields = 3

// Row is one typed instruction row of the export
type Row struct {
	Seq      int
	Step     int
	Instr    string
	Operands [3]string
	Comment  string
}

// OperandList returns the row's operands up to the last non-empty one
func (r Row) OperandList() []string {
	last := -1
	for i, op := range r.Operands {
		if op != "" {
			last = i
		}
	}
	return r.Operands[:last+1]
}

// Group is the ordered set of rows sharing one step (rung) index
type Group struct {
	Step int
	Rows []Row
}

// Reader scans an export text row by row
type Reader struct {
	lines  []string
	pos    int
	peeked *Row
}

// New creates a reader over the raw export text. Line endings are
// normalized, blank lines dropped, and a header line skipped when the
// first line looks like column names rather than data.
func New(text string) *Reader {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	r := &Reader{lines: lines}
	if len(lines) > 0 && looksLikeHeader(lines[0]) {
		r.pos = 1
	}
	return r
}

// looksLikeHeader reports whether a line names columns instead of carrying
// data: its lowercased text mentions both a sequence-like and an
// instruction-like column.
func looksLikeHeader(line string) bool {
	lower := strings.ToLower(line)

	seqLike := strings.Contains(lower, "seq") ||
		strings.Contains(lower, "no.") ||
		strings.Contains(lower, "number")
	instrLike := strings.Contains(lower, "instr") ||
		strings.Contains(lower, "mnemonic") ||
		strings.Contains(lower, "command")

	return seqLike && instrLike
}

// Next returns the next well-formed row, or false at end of input.
// Malformed lines (fewer than three fields, non-numeric sequence or step)
// are skipped silently.
func (r *Reader) Next() (Row, bool) {
	if r.peeked != nil {
		row := *r.peeked
		r.peeked = nil
		return row, true
	}

	for r.pos < len(r.lines) {
		line := r.lines[r.pos]
		r.pos++

		row, ok := parseLine(line)
		if ok {
			return row, true
		}
	}
	return Row{}, false
}

// Peek returns the next row without advancing the cursor
func (r *Reader) Peek() (Row, bool) {
	if r.peeked != nil {
		return *r.peeked, true
	}

	row, ok := r.Next()
	if !ok {
		return Row{}, false
	}
	r.peeked = &row
	return row, true
}

// Groups consumes the remaining rows and returns them grouped by step
// index, groups in first-appearance order, rows in insertion order within
// each group.
func (r *Reader) Groups() []Group {
	var groups []Group
	index := make(map[int]int)

	for {
		row, ok := r.Next()
		if !ok {
			break
		}

		if i, seen := index[row.Step]; seen {
			groups[i].Rows = append(groups[i].Rows, row)
			continue
		}
		index[row.Step] = len(groups)
		groups = append(groups, Group{Step: row.Step, Rows: []Row{row}})
	}

	return groups
}

// parseLine converts one line into a typed row
func parseLine(line string) (Row, bool) {
	fields := splitFields(line)
	if len(fields) < minFields {
		return Row{}, false
	}

	seq, err := strconv.Atoi(strings.TrimSpace(fields[colSeq]))
	if err != nil {
		return Row{}, false
	}
	step, err := strconv.Atoi(strings.TrimSpace(fields[colStep]))
	if err != nil {
		return Row{}, false
	}

	row := Row{
		Seq:   seq,
		Step:  step,
		Instr: strings.ToUpper(strings.TrimSpace(fields[colInstr])),
	}

	for i := 0; i < 3; i++ {
		if colOperand1+i < len(fields) {
			row.Operands[i] = strings.TrimSpace(fields[colOperand1+i])
		}
	}
	if colComment < len(fields) {
		row.Comment = strings.TrimSpace(fields[colComment])
	}

	return row, row.Instr != ""
}

// splitFields splits a comma-separated line honoring double-quoted fields.
// Inside quotes a comma is literal and a doubled quote is an escaped
// literal quote. An unterminated quote runs to end of line.
func splitFields(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes

		case ch == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()

		default:
			field.WriteByte(ch)
		}
	}
	fields = append(fields, field.String())

	return fields
}
