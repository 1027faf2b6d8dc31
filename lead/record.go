package lead

import (
	"github.com/valyala/fastjson"
)

// Record is a single lead: an open-ended JSON object with three
// required string fields (_id, email, entryDate) and arbitrary opaque
// payload fields. fastjson keeps the document's field order, which the
// audit diff relies on.
type Record struct {
	v *fastjson.Value
}

// Parse parses a single record from its JSON text. Mostly useful in
// tests; documents go through Load.
func Parse(s string) (Record, error) {
	v, err := fastjson.Parse(s)
	if err != nil {
		return Record{}, err
	}
	return Record{v: v}, nil
}

func (r Record) ID() string        { return r.stringField("_id") }
func (r Record) Email() string     { return r.stringField("email") }
func (r Record) EntryDate() string { return r.stringField("entryDate") }

func (r Record) stringField(key string) string {
	if r.v == nil {
		return ""
	}
	return string(r.v.GetStringBytes(key))
}

// AppendJSON appends the record's compact JSON rendering to dst.
func (r Record) AppendJSON(dst []byte) []byte {
	if r.v == nil {
		return append(dst, "null"...)
	}
	return r.v.MarshalTo(dst)
}

// Fields returns the record's field names in document order. Non-object
// records have no fields.
func (r Record) Fields() []string {
	if r.v == nil {
		return nil
	}
	o, err := r.v.Object()
	if err != nil {
		return nil
	}
	fields := make([]string, 0, o.Len())
	o.Visit(func(key []byte, _ *fastjson.Value) {
		fields = append(fields, string(key))
	})
	return fields
}

// FieldText renders a field for display in the audit log: string
// contents for strings, compact JSON text for anything else.
func (r Record) FieldText(key string) (string, bool) {
	v := r.field(key)
	if v == nil {
		return "", false
	}
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes()), true
	}
	return string(v.MarshalTo(nil)), true
}

// FieldRaw is the compact JSON of a field value. Equality checks use
// this instead of FieldText so the string "5" and the number 5 stay
// distinct.
func (r Record) FieldRaw(key string) (string, bool) {
	v := r.field(key)
	if v == nil {
		return "", false
	}
	return string(v.MarshalTo(nil)), true
}

func (r Record) field(key string) *fastjson.Value {
	if r.v == nil {
		return nil
	}
	return r.v.Get(key)
}
