package transfer

import (
	"io"
	"mime/quotedprintable"
)

// NewQuotedPrintableDecoder will read bytes from the given io.Reader and return
// them in the returned io.Reader after decoding them from quoted-printable
// format. Soft line breaks are removed. An "=" that does not start a valid
// escape is passed through as-is.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return quotedprintable.NewReader(r)
}
