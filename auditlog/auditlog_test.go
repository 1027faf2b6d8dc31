package auditlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeEntryFormat(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	err := w.Change(
		[]byte(`{"_id":"1","city":"X"}`),
		[]byte(`{"_id":"1","city":"Y"}`),
		[]FieldChange{{Field: "city", From: "X", To: "Y"}},
	)
	assert.Nil(t, err)

	want := "Original Record: {\"_id\":\"1\",\"city\":\"X\"}\n" +
		"Processed Record: {\"_id\":\"1\",\"city\":\"Y\"}\n" +
		"Changes:\n" +
		"  city: 'X' → 'Y'\n" +
		separator + "\n"
	assert.Equal(t, want, buf.String())
}

func TestSkipEntryFormat(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	err := w.Skip([]byte(`{"_id":"1"}`), "Invalid entryDate format")
	assert.Nil(t, err)

	want := "Skipped Record (Reason: Invalid entryDate format): {\"_id\":\"1\"}\n" +
		separator + "\n"
	assert.Equal(t, want, buf.String())
}

func TestSeparatorLength(t *testing.T) {
	assert.Len(t, separator, 200)
	assert.Equal(t, "", strings.ReplaceAll(separator, "-", ""))
}

func TestEntriesAppendInOrder(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	require.Nil(t, w.Skip([]byte(`{"a":1}`), "first"))
	require.Nil(t, w.Skip([]byte(`{"b":2}`), "second"))

	out := buf.String()
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestCreateTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merge.log")
	require.Nil(t, os.WriteFile(path, []byte("stale run\n"), 0o644))

	w, err := Create(path)
	require.Nil(t, err)
	require.Nil(t, w.Close())

	bs, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Empty(t, bs)
}

func TestCreateBadPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "no", "such", "dir", "merge.log"))
	assert.NotNil(t, err)
}
