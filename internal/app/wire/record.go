/*
Package wire implements the record framing used by the chat service.

A record is the text `<tag key="value" ... />` followed by a single NUL byte. This file
defines the Record and Attr types together with the two encoders (unordered and ordered)
and the decoder for received records.
*/
package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"sort"
	"strings"

	"roombot/internal/pkg/errs"
)

// Terminator ends every record on the wire.
const Terminator byte = 0x00

// Attr is one key/value pair of a record.
type Attr struct {
	Key   string
	Value string
}

// Record is a decoded record. Attrs keeps the order in which the attributes appeared.
type Record struct {
	Tag   string
	Attrs []Attr

	// Raw is the record text as received, without the terminator.
	Raw string
}

// Get returns the value of key and whether it was present.
func (r Record) Get(key string) (string, bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Map returns the attributes as a mapping. Later duplicates win.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.Attrs))
	for _, a := range r.Attrs {
		m[a.Key] = a.Value
	}
	return m
}

// Encode serializes an unordered record. Keys are emitted in sorted order; the server must
// not depend on it. Values are inserted verbatim.
func Encode(tag string, attrs map[string]string) []byte {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]Attr, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, Attr{Key: k, Value: attrs[k]})
	}
	return EncodeOrdered(tag, ordered...)
}

// EncodeOrdered serializes a record emitting attrs in exactly the given order.
// Values are not escaped: a value holding a double quote or control character yields a
// malformed record, which the wire dialect leaves undefined.
func EncodeOrdered(tag string, attrs ...Attr) []byte {
	var b bytes.Buffer
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteByte(' ')
	for _, a := range attrs {
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteString(`" `)
	}
	b.WriteString("/>")
	b.WriteByte(Terminator)
	return b.Bytes()
}

// TagOf extracts the tag of a raw record: the leading token after '<' up to the first space.
// Records without attributes such as `<done/>` are handled by trimming the closing marker.
func TagOf(raw string) string {
	s := strings.TrimPrefix(raw, "<")
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	s = strings.TrimSuffix(s, ">")
	return strings.TrimSuffix(s, "/")
}

// Decode parses the text of one record (terminator already stripped).
func Decode(raw string) (Record, error) {
	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.Strict = false

	for {
		tok, err := dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, errs.NewError(errs.ErrMalformedRecord, "no element found")
			}
			return Record{}, errs.Wrap(errs.ErrMalformedRecord, err, "invalid element syntax")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		rec := Record{
			Tag:   start.Name.Local,
			Attrs: make([]Attr, 0, len(start.Attr)),
			Raw:   raw,
		}
		for _, a := range start.Attr {
			rec.Attrs = append(rec.Attrs, Attr{Key: attrName(a.Name), Value: a.Value})
		}
		return rec, nil
	}
}

// attrName restores names such as "xml:lang" that the decoder splits into space and local.
func attrName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
