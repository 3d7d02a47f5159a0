package header

import (
	"encoding/base64"
	"mime"
	"strings"

	"github.com/zostay/go-mailbody/message/charset"
)

var wordDecoder = &mime.WordDecoder{CharsetReader: charset.Reader}

// Decode transforms a header field body containing RFC 2047 encoded-words
// (e.g., "=?ISO-2022-JP?B?GyRCJTklRiE8JS0bKEI=?=") into UTF-8 text. Bodies
// without encoded-words are returned unchanged. If decoding fails, because of
// a bad encoding or a charset no decoder exists for, the body is returned
// as-is.
func Decode(body string) string {
	if !strings.Contains(body, "=?") {
		return body
	}

	dec, err := wordDecoder.DecodeHeader(body)
	if err != nil {
		return body
	}

	return dec
}

// EncodeSubject encodes a subject as a single UTF-8 b-type encoded-word.
func EncodeSubject(subject string) string {
	return "=?UTF-8?B?" + base64.StdEncoding.EncodeToString([]byte(subject)) + "?="
}
