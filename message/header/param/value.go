package param

import (
	"regexp"
	"strings"
	"sync"
)

const (
	// Charset is the name of the charset parameter that may be present in the
	// Content-type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in
	// the Content-type header.
	Boundary = "boundary"
)

// cutset holds the characters clients wrap around parameter values, on top
// of the usual double quotes.
const cutset = "<>()[]\"':; \t\n\r"

// Value is a parsed parameterized header field body. It is immutable.
//
// Parsing is lenient on purpose: the primary value is whatever precedes the
// first semi-colon and parameters are looked up by pattern rather than by a
// strict RFC 2045 parse, so a value with a single broken parameter still
// yields the others.
type Value struct {
	raw    string
	v      string
	params string
}

// Parse breaks the given header field body into its primary value, which is
// trimmed and lower-cased, and its parameter string, which is trimmed. It
// never fails, an empty body results in an empty Value.
func Parse(body string) *Value {
	v, params, _ := strings.Cut(body, ";")
	return &Value{
		raw:    body,
		v:      strings.ToLower(strings.TrimSpace(v)),
		params: strings.TrimSpace(params),
	}
}

// Value returns the primary value: the lower-cased text before the first
// semi-colon.
func (pv *Value) Value() string {
	return pv.v
}

// MediaType is a synonym for Value() and returns the Content-type value, e.g.,
// "text/html", "image/jpeg", "multipart/mixed", etc.
func (pv *Value) MediaType() string {
	return pv.v
}

// Type returns the part of the MediaType() before the slash. If no slash is
// found, it returns an empty string.
//
// For example, if MediaType() returns "image/jpeg", this method will return
// "image".
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the MediaType() after the slash. If no slash is
// found, it returns an empty string.
//
// For example, if MediaType() returns "text/html", this method will return
// "html".
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// IsMultipart returns true if the media type is one of the multipart/* types.
func (pv *Value) IsMultipart() bool {
	return pv.Type() == "multipart"
}

// Parameters returns the trimmed, unparsed text after the first semi-colon.
func (pv *Value) Parameters() string {
	return pv.params
}

var (
	paramREs   = map[string]*regexp.Regexp{}
	paramREsMu sync.Mutex
)

func paramRE(name string) *regexp.Regexp {
	paramREsMu.Lock()
	defer paramREsMu.Unlock()

	re, ok := paramREs[name]
	if !ok {
		re = regexp.MustCompile(`(?i)(?:^|[;\s])` + regexp.QuoteMeta(name) + `\s*=\s*("[^"]*"|[^;\s]*)`)
		paramREs[name] = re
	}
	return re
}

// Parameter returns the value of the named parameter, compared without regard
// to case. Quotes, brackets, and stray separators around the value are
// removed. It returns an empty string if the parameter is missing.
func (pv *Value) Parameter(name string) string {
	m := paramRE(name).FindStringSubmatch(pv.params)
	if m == nil {
		return ""
	}
	return strings.Trim(m[1], cutset)
}

// Charset returns the value of the "charset" parameter.
func (pv *Value) Charset() string {
	return pv.Parameter(Charset)
}

// Boundary returns the value of the "boundary" parameter.
func (pv *Value) Boundary() string {
	return pv.Parameter(Boundary)
}

// String returns the header field body the Value was parsed from.
func (pv *Value) String() string {
	return pv.raw
}
