package sweep

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// columnWidth is the fixed width of every TableSink column.
const columnWidth = 15

// tableColumns are the TableSink header labels, in output order.
var tableColumns = []string{"edge_prob", "nb_vertices", "nb_edges", "size_1st", "size_2nd", "nb_comp"}

// TableSink writes rows as a whitespace-aligned text table. The header line
// starts with '#', so the table is itself readable by comment-aware tools.
// Every cell is right-aligned to 15 characters and followed by one space.
type TableSink struct {
	w      *bufio.Writer
	header bool
}

// NewTableSink wraps w. The header is written with the first row or flush.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: bufio.NewWriter(w)}
}

// Write appends one table line.
func (s *TableSink) Write(r Row) error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	cells := []string{
		formatProb(r.T),
		strconv.Itoa(r.Vertices),
		strconv.Itoa(r.Retained),
		strconv.Itoa(r.Largest),
		strconv.Itoa(r.SecondLargest),
		strconv.Itoa(r.Components),
	}
	var sb strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&sb, "%*s ", columnWidth, c)
	}
	sb.WriteByte('\n')
	_, err := s.w.WriteString(sb.String())

	return err
}

// Flush writes the header if nothing was written yet and flushes the buffer.
func (s *TableSink) Flush() error {
	if err := s.writeHeader(); err != nil {
		return err
	}

	return s.w.Flush()
}

func (s *TableSink) writeHeader() error {
	if s.header {
		return nil
	}
	s.header = true
	var sb strings.Builder
	sb.WriteByte('#')
	for i, c := range tableColumns {
		width := columnWidth
		if i == 0 {
			width-- // the '#' takes the first column's leading cell
		}
		fmt.Fprintf(&sb, "%*s ", width, c)
	}
	sb.WriteByte('\n')
	_, err := s.w.WriteString(sb.String())

	return err
}

// formatProb renders T with six significant digits and no trailing zeros.
func formatProb(t float64) string {
	return strconv.FormatFloat(t, 'g', 6, 64)
}

// MemorySink keeps every row in memory.
type MemorySink struct {
	Rows []Row
}

// Write appends r.
func (s *MemorySink) Write(r Row) error {
	s.Rows = append(s.Rows, r)
	return nil
}

// Flush is a no-op.
func (s *MemorySink) Flush() error { return nil }
