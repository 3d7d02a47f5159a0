// Package charset transcodes text from the character sets named in MIME
// headers into UTF-8. It loads every encoding known to
// golang.org/x/text/encoding/ianaindex, which makes binaries larger, but lets
// the parser read nearly anything found in real mail.
package charset

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// UTF8 is the charset assumed when a part does not declare one.
const UTF8 = "UTF-8"

// Lookup finds the encoding for the given charset name. The IANA MIME names
// are tried first and then the WHATWG labels, which cover many of the
// misspellings mail clients like to produce (e.g., "sjis", "x-sjis").
func Lookup(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" {
		label = "utf-8"
	}

	if e, err := ianaindex.MIME.Encoding(label); err == nil && e != nil {
		return e, nil
	}

	if e, err := htmlindex.Get(label); err == nil && e != nil {
		return e, nil
	}

	return nil, fmt.Errorf("unsupported charset %q", name)
}

// Decode transcodes b from the named charset into UTF-8. Bytes that are not
// valid in the source charset become unicode.ReplacementChar. An unknown
// charset name is an error.
func Decode(name string, b []byte) ([]byte, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	out, _, err := transform.Bytes(e.NewDecoder(), b)
	if err != nil {
		return nil, fmt.Errorf("decode charset %q: %w", name, err)
	}

	return out, nil
}

// Reader is a CharsetReader for mime.WordDecoder. It reads the whole
// encoded-word payload and returns it transcoded into UTF-8.
func Reader(name string, r io.Reader) (io.Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	out, err := Decode(name, b)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(out), nil
}
