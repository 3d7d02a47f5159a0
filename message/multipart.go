package message

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zostay/go-mailbody/message/header"
)

// Part is an interface defining the parts of a message. Each Part is either a
// branch or a leaf.
//
// A branch Part is one that has sub-parts. In this case, the IsMultipart()
// method will return true and GetParts() returns the sub-parts. Content()
// returns no content for a branch.
//
// A leaf Part is one that contains content. In this case, the IsMultipart()
// method will return false and GetParts() returns nil. The Content() method
// will return the decoded content of the part.
//
// Every Part is either an *Opaque or a *Multipart, so it is safe to use a
// type switch that looks only for those.
type Part interface {
	fmt.Stringer

	// IsMultipart will return true if this Part is a branch with nested
	// parts.
	IsMultipart() bool

	// GetHeader returns the header of the part. It is never nil, but it may
	// be empty.
	GetHeader() *header.Header

	// MediaType returns the lower-cased Content-type value without
	// parameters, e.g., "text/plain" or "multipart/mixed".
	MediaType() string

	// Charset returns the declared charset of the content, defaulting to
	// "UTF-8".
	Charset() string

	// TransferEncoding returns the lower-cased Content-transfer-encoding,
	// defaulting to "7bit".
	TransferEncoding() string

	// Content returns the content with the transfer encoding decoded and,
	// for text, transcoded to UTF-8. A branch returns nil and no error.
	Content() ([]byte, error)

	// GetParts provides the sub-parts of a multipart part in the order they
	// appear in the message. This returns nil for a leaf.
	GetParts() []Part
}

// info holds the attributes shared by both kinds of Part.
type info struct {
	header           *header.Header
	mediaType        string
	charset          string
	transferEncoding string
}

// GetHeader returns the header for the part.
func (pi *info) GetHeader() *header.Header {
	return pi.header
}

// MediaType returns the lower-cased media type of the part.
func (pi *info) MediaType() string {
	return pi.mediaType
}

// Charset returns the charset declared for the part.
func (pi *info) Charset() string {
	return pi.charset
}

// TransferEncoding returns the normalized Content-transfer-encoding of the
// part.
func (pi *info) TransferEncoding() string {
	return pi.transferEncoding
}

// Multipart is a multipart MIME part. Its media type always starts with
// "multipart/".
type Multipart struct {
	info

	boundary string

	// parts holds this layer's parts
	parts []Part

	// err is set when the sub-parts could not be (fully) extracted
	err error
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool {
	return true
}

// Boundary returns the boundary parameter the part was split on.
func (mm *Multipart) Boundary() string {
	return mm.boundary
}

// Content always returns nil, nil.
func (mm *Multipart) Content() ([]byte, error) {
	return nil, nil
}

// GetParts returns the sub-parts of this part or nil if there aren't any.
func (mm *Multipart) GetParts() []Part {
	if len(mm.parts) == 0 {
		return nil
	}
	return mm.parts
}

// Err returns the reason the sub-parts of this part are missing or
// incomplete: ErrNoBoundary, ErrMaxDepth, or ErrLargePart. It returns nil when
// the part was split normally.
func (mm *Multipart) Err() error {
	return mm.err
}

// String returns "Multipart: " followed by the structure of the part encoded
// as JSON.
func (mm *Multipart) String() string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Structure(mm)); err != nil {
		return "Multipart: " + err.Error()
	}
	return "Multipart: " + string(bytes.TrimRight(buf.Bytes(), "\n"))
}
