// SPDX-License-Identifier: MIT

// Package sparse - line-oriented text codec.
//
// Grammar (order-insensitive for the header lines, typically first):
//
//	rows=<integer>
//	cols=<integer>
//	(<integer>, <integer>, <integer>)
//
// Blank lines are skipped. Any other line shape, a triplet with the wrong
// field count, or a field that fails integer parsing aborts the load with
// ErrInvalidFormat — there is no recovery and no partial matrix. I/O
// failures while reading fold into the same error kind; callers that need
// to distinguish a missing file do so before calling Load.
//
// The loader is deliberately permissive about coordinates: triplets outside
// the declared rows×cols are stored as-is, matching the historical format.
// Serialization emits the header followed by one triplet per stored cell in
// ascending row-major order, newline-joined with no trailing newline, so a
// serialize→parse round trip reproduces the same logical matrix.

package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Codec literals, kept in constants for grep-ability and consistency.
const (
	rowsPrefix = "rows="
	colsPrefix = "cols="

	entryOpen  = "("
	entryClose = ")"
	entrySep   = ","

	entryFields = 3 // row, col, value
)

// codecErrorf attaches line context to ErrInvalidFormat.
// The sentinel stays errors.Is-matchable through the wrap.
func codecErrorf(lineNo int, line string) error {
	return fmt.Errorf("line %d %q: %w", lineNo, line, ErrInvalidFormat)
}

// parseField trims one triplet field and parses it as a signed integer.
func parseField(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// parseAssignment parses the value of a "rows=" / "cols=" line and rejects
// negative dimensions, which the entity could not represent.
func parseAssignment(line, prefix string) (int, error) {
	n, err := parseField(strings.TrimPrefix(line, prefix))
	if err != nil || n < 0 {
		return 0, ErrInvalidFormat
	}

	return int(n), nil
}

// Parse reads the text format from r and constructs the matrix it encodes.
// Stage 1 (Scan): classify each line as header, triplet, blank or invalid.
// Stage 2 (Ingest): route every triplet through Set, so explicit zeros in
// the input are dropped and later duplicates overwrite earlier ones.
// Stage 3 (Finalize): surface any read failure as ErrInvalidFormat.
// Complexity: O(lines) time, O(nnz) memory.
func Parse(r io.Reader) (*Matrix, error) {
	m := &Matrix{entries: make(map[Coord]int64)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			continue // skip blank lines

		case strings.HasPrefix(line, rowsPrefix):
			n, err := parseAssignment(line, rowsPrefix)
			if err != nil {
				return nil, codecErrorf(lineNo, line)
			}
			m.rows = n

		case strings.HasPrefix(line, colsPrefix):
			n, err := parseAssignment(line, colsPrefix)
			if err != nil {
				return nil, codecErrorf(lineNo, line)
			}
			m.cols = n

		case strings.HasPrefix(line, entryOpen) && strings.HasSuffix(line, entryClose):
			inner := line[len(entryOpen) : len(line)-len(entryClose)]
			fields := strings.Split(inner, entrySep)
			if len(fields) != entryFields {
				return nil, codecErrorf(lineNo, line)
			}
			row, errR := parseField(fields[0])
			col, errC := parseField(fields[1])
			val, errV := parseField(fields[2])
			if errR != nil || errC != nil || errV != nil {
				return nil, codecErrorf(lineNo, line)
			}
			m.Set(int(row), int(col), val)

		default:
			return nil, codecErrorf(lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %v: %w", err, ErrInvalidFormat)
	}

	return m, nil
}

// ParseString parses the text format from an in-memory string.
func ParseString(s string) (*Matrix, error) {
	return Parse(strings.NewReader(s))
}

// Load constructs a matrix by parsing the file at path.
// Any failure — the file missing, unreadable, or malformed — is reported as
// ErrInvalidFormat; distinguishing the cases is the caller's concern.
// The file handle is released on every exit path.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, ErrInvalidFormat)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

// String renders the matrix in the text format: the rows=/cols= header,
// then one triplet line per stored cell in ascending row-major order.
// Lines are newline-joined with no trailing newline.
// Complexity: O(nnz log nnz).
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(rowsPrefix)
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteString("\n")
	sb.WriteString(colsPrefix)
	sb.WriteString(strconv.Itoa(m.cols))
	for _, e := range m.Entries() {
		sb.WriteString(fmt.Sprintf("\n(%d, %d, %d)", e.Row, e.Col, e.Val))
	}

	return sb.String()
}

// WriteTo writes the text format to w, implementing io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// Save writes the text format to the file at path, creating or truncating
// it. The file handle is released on every exit path; a close failure after
// a clean write is still reported.
func (m *Matrix) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	_, werr := m.WriteTo(f)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("save %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("save %s: %w", path, cerr)
	}

	return nil
}
