package transfer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be transformed from quoted-printable to binary data
	Base64          = "base64"           // bytes will be transformed from base64 to binary data
)

// Default is the transfer encoding assumed when a part does not declare one.
const Default = Bit7

// Decoder returns an io.Reader, which will read from the given io.Reader
// and decode the encoded data back into binary form.
type Decoder func(io.Reader) io.Reader

// Decoders defines the supported Content-transfer-encodings and how to
// decode them. It can be modified to change the global handling of transfer
// encodings, but only before any parsing has started.
var Decoders = map[string]Decoder{
	None:            NewAsIsDecoder,
	Bit7:            NewAsIsDecoder,
	Bit8:            NewAsIsDecoder,
	Binary:          NewAsIsDecoder,
	QuotedPrintable: NewQuotedPrintableDecoder,
	Base64:          NewBase64Decoder,
}

// Normalize lower-cases and trims a Content-transfer-encoding header body. An
// empty value becomes Default.
func Normalize(cte string) string {
	cte = strings.ToLower(strings.TrimSpace(cte))
	if cte == "" {
		return Default
	}
	return cte
}

// Known returns true if there is a decoder for the given encoding.
func Known(cte string) bool {
	_, ok := Decoders[Normalize(cte)]
	return ok
}

// ApplyTransferDecoding returns an io.Reader that will decode the incoming
// bytes according to the named transfer encoding. Unknown encodings leave the
// bytes as-is.
func ApplyTransferDecoding(cte string, r io.Reader) io.Reader {
	if dec, ok := Decoders[Normalize(cte)]; ok {
		return dec(r)
	}
	return r
}

// Decode returns the given bytes with the named transfer encoding decoded. On
// failure, it returns the bytes decoded before the failure along with the
// error.
func Decode(cte string, b []byte) ([]byte, error) {
	out, err := io.ReadAll(ApplyTransferDecoding(cte, bytes.NewReader(b)))
	if err != nil {
		return out, fmt.Errorf("decode %s: %w", Normalize(cte), err)
	}
	return out, nil
}
