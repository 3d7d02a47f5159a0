package header

import "strings"

// These are the header fields this module reads.
const (
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	Subject                 = "Subject"
	To                      = "To"
)

// Field is a single header field. The Body holds the unfolded value: any
// continuation lines are joined to the first line with "\n" after being
// trimmed.
type Field struct {
	Name string
	Body string
}

// Key returns the lower-cased field name, which is what lookups compare
// against.
func (f *Field) Key() string {
	return strings.ToLower(f.Name)
}

// Header is an ordered list of header fields. The zero value is an empty
// header, ready to use.
type Header struct {
	lbr    Break
	fields []*Field
}

// Break returns the line break detected for this header.
func (h *Header) Break() Break {
	return h.lbr
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Fields returns the fields in the order they were found. Do not modify the
// returned slice.
func (h *Header) Fields() []*Field {
	return h.fields
}

// Get returns the body of the first field with the given name, compared
// without regard to case. It returns an empty string when no such field
// exists. Headers are optional, so absence is not an error.
func (h *Header) Get(name string) string {
	key := strings.ToLower(name)
	for _, f := range h.fields {
		if f.Key() == key {
			return f.Body
		}
	}
	return ""
}

// GetAll returns the bodies of every field with the given name, in order.
func (h *Header) GetAll(name string) []string {
	key := strings.ToLower(name)
	var bodies []string
	for _, f := range h.fields {
		if f.Key() == key {
			bodies = append(bodies, f.Body)
		}
	}
	return bodies
}

// Has returns true if at least one field with the given name is present.
func (h *Header) Has(name string) bool {
	key := strings.ToLower(name)
	for _, f := range h.fields {
		if f.Key() == key {
			return true
		}
	}
	return false
}

// Add appends a new field to the end of the header.
func (h *Header) Add(name, body string) {
	h.fields = append(h.fields, &Field{Name: name, Body: body})
}

// GetContentType returns the raw Content-type body.
func (h *Header) GetContentType() string {
	return h.Get(ContentType)
}

// GetTransferEncoding returns the raw Content-transfer-encoding body.
func (h *Header) GetTransferEncoding() string {
	return h.Get(ContentTransferEncoding)
}
