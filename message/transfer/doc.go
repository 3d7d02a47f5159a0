// Package transfer decodes the Content-transfer-encoding of message parts.
// Only quoted-printable and base64 change the bytes. The 7bit, 8bit, and
// binary encodings, as well as any encoding this package does not know, leave
// the bytes as-is.
//
// For the sake of this module, "decoded" means the content has been
// transformed from the named Content-transfer-encoding back into the bytes of
// its charset.
package transfer
