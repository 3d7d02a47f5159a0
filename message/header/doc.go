// Package header reads email message headers. Parse turns a raw header block
// into an ordered list of fields, unfolding continuation lines as it goes.
// The rest of the package holds the helpers needed to interpret common field
// bodies: RFC 2047 encoded-word decoding, address extraction, and date
// parsing.
//
// Everything here is forgiving. Mail on the Internet is frequently wrong, so
// rather than failing, malformed input degrades into the most plausible
// reading and absent fields read as the empty string.
package header
