package header

// Break represents the line break used by a message or message part.
type Break string

// Line breaks seen in the wild. CRLF is what the RFCs require, but mail saved
// to disk usually has LF.
const (
	Meh  Break = ""         // no line break detected
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - Commodores/old Macs linebreak
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// Breaks lists the line breaks in the order they should be tried when
// looking for the blank line between header and body. CRLF goes first so a
// network formatted message is never mistaken for an LF message.
var Breaks = []Break{CRLF, LFCR, LF, CR}

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// Blank returns the sequence marking an empty line: the break twice.
func (b Break) Blank() []byte {
	return []byte(b + b)
}
