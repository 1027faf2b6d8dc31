package lead

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/valyala/fastjson"
)

var (
	ErrParse = errors.New("could not parse leads document")
	ErrWrite = errors.New("could not write leads document")
)

// Load parses a leads document: either {"leads": [...]} or a bare
// array of records. Empty or whitespace-only input is an empty
// sequence, not an error. A top-level value that is neither an
// envelope nor an array also normalizes to an empty sequence; only
// invalid JSON fails.
func Load(bs []byte) ([]Record, error) {
	if len(bytes.TrimSpace(bs)) == 0 {
		return nil, nil
	}

	v, err := fastjson.ParseBytes(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var arr []*fastjson.Value
	switch v.Type() {
	case fastjson.TypeObject:
		arr = v.GetArray("leads")
	case fastjson.TypeArray:
		arr, _ = v.Array()
	}

	records := make([]Record, len(arr))
	for i, e := range arr {
		records[i] = Record{v: e}
	}
	return records, nil
}

// LoadFile reads and parses the document at path. An unreadable path
// is reported as a parse failure, same as invalid JSON.
func LoadFile(path string) ([]Record, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Load(bs)
}

// Encode renders records as a compact {"leads": [...]} envelope.
func Encode(records []Record) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"leads":[`)
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(r.AppendJSON(nil))
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

// Save writes records to path as a pretty-printed leads envelope.
// json.Indent reformats the already-encoded bytes without touching
// escaping, so non-ASCII content stays as fastjson rendered it.
func Save(path string, records []Record) error {
	var out bytes.Buffer
	if err := json.Indent(&out, Encode(records), "", "  "); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	out.WriteByte('\n')
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
