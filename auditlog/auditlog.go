// Package auditlog writes the append-only merge audit trail: one entry
// per field-level change caused by a collapse, one entry per skipped
// record, in processing order.
package auditlog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var separator = strings.Repeat("-", 200)

// FieldChange is one changed field in a collapse: the displaced
// record's value and the replacement's value. From is "N/A" when the
// displaced record did not have the field.
type FieldChange struct {
	Field string
	From  string
	To    string
}

// Writer appends entries to an audit sink. It never reads back and
// never reorders.
type Writer struct {
	w io.Writer
	c io.Closer
}

// New wraps an arbitrary writer, e.g. a buffer in tests.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Create opens (and truncates) the audit log file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: f, c: f}, nil
}

// Close closes the underlying file, if there is one.
func (l *Writer) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}

// Change records a collapse: the displaced record, its replacement,
// and every field that differs between them. original and processed
// are compact JSON.
func (l *Writer) Change(original, processed []byte, changes []FieldChange) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Original Record: %s\n", original)
	fmt.Fprintf(&b, "Processed Record: %s\n", processed)
	b.WriteString("Changes:\n")
	for _, c := range changes {
		fmt.Fprintf(&b, "  %s: '%s' → '%s'\n", c.Field, c.From, c.To)
	}
	b.WriteString(separator)
	b.WriteByte('\n')
	_, err := io.WriteString(l.w, b.String())
	return err
}

// Skip records a rejected record and the reason it was excluded.
func (l *Writer) Skip(record []byte, reason string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Skipped Record (Reason: %s): %s\n", reason, record)
	b.WriteString(separator)
	b.WriteByte('\n')
	_, err := io.WriteString(l.w, b.String())
	return err
}
