package message

import (
	"errors"
	"fmt"

	"github.com/zostay/go-mailbody/message/charset"
	"github.com/zostay/go-mailbody/message/transfer"
)

// TextMediaTypes lists the media types whose content is transcoded from the
// declared charset to UTF-8 by Content(). Content of any other type is
// returned as bytes after transfer decoding only.
var TextMediaTypes = map[string]bool{
	"text/plain":            true,
	"text/html":             true,
	"text/csv":              true,
	"application/xhtml+xml": true,
	"application/json":      true,
}

// ErrDecode is matched with errors.Is by every *DecodeError.
var ErrDecode = errors.New("unable to decode part content")

// Decode stages reported by DecodeError.
const (
	StageTransfer = "transfer"
	StageCharset  = "charset"
)

// DecodeError is returned by Content() when the content of a part is present
// but cannot be decoded.
type DecodeError struct {
	// Stage is StageTransfer or StageCharset.
	Stage string

	// Name is the transfer encoding or charset that failed.
	Name string

	// Err is the underlying error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decoding with %q failed: %v", e.Stage, e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is returns true when target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Opaque is a leaf part. It holds the body content as found in the message,
// which is decoded only when read.
type Opaque struct {
	info

	// content is the whitespace trimmed body, still transfer encoded
	content []byte
}

// IsMultipart always returns false.
func (m *Opaque) IsMultipart() bool {
	return false
}

// GetParts always returns nil.
func (m *Opaque) GetParts() []Part {
	return nil
}

// RawContent returns the body of the part with leading and trailing
// whitespace removed, exactly as it appears in the message. The returned
// slice must not be modified.
func (m *Opaque) RawContent() []byte {
	return m.content
}

// SetTransferEncoding changes the Content-transfer-encoding the content will
// be decoded with when read. Nothing is decoded now.
func (m *Opaque) SetTransferEncoding(cte string) {
	m.transferEncoding = transfer.Normalize(cte)
}

// Content returns the content of the part. The transfer encoding is decoded
// first. Then, if the media type is listed in TextMediaTypes, the content is
// transcoded from its charset to UTF-8.
//
// If either step fails, Content returns a best-effort result together with a
// *DecodeError: the raw content when transfer decoding fails or the transfer
// decoded content when transcoding fails. Calling Content does not change the
// part, so it may be called any number of times.
func (m *Opaque) Content() ([]byte, error) {
	b, err := transfer.Decode(m.transferEncoding, m.content)
	if err != nil {
		return m.content, &DecodeError{Stage: StageTransfer, Name: m.transferEncoding, Err: err}
	}

	if !TextMediaTypes[m.mediaType] {
		return b, nil
	}

	u, err := charset.Decode(m.charset, b)
	if err != nil {
		return b, &DecodeError{Stage: StageCharset, Name: m.charset, Err: err}
	}

	return u, nil
}

// String returns the decoded content, or as much of it as could be decoded.
func (m *Opaque) String() string {
	b, _ := m.Content()
	return string(b)
}
