package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zostay/go-mailbody/message/header"
)

// Message is a parsed email message: the top-level header and the root of
// the part tree built from the body.
type Message struct {
	header *header.Header
	body   Part
}

// Parse reads a complete message from r and parses it. The only errors
// returned are errors reading from r. Problems in the message itself are
// tolerated as described for NewPart.
func Parse(r io.Reader, opts ...ParseOption) (*Message, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read message: %w", err)
	}

	return ParseBytes(raw, opts...), nil
}

// ParseBytes parses a complete message held in memory. It never fails.
func ParseBytes(raw []byte, opts ...ParseOption) *Message {
	head, body, lb := Split(raw)
	h := header.Parse(head, lb)

	return &Message{
		header: h,
		body:   newParser(opts).build(body, h, 0),
	}
}

// Header returns the top-level header of the message.
func (m *Message) Header() *header.Header {
	return m.header
}

// Body returns the root part of the message.
func (m *Message) Body() Part {
	return m.body
}

// Date returns the parsed Date field.
func (m *Message) Date() (time.Time, error) {
	return header.ParseTime(m.header.Get(header.Date))
}

// Subject returns the Subject field with any encoded-words decoded.
func (m *Message) Subject() string {
	return header.Decode(m.header.Get(header.Subject))
}

// NameFrom returns the decoded display name of the first From address.
func (m *Message) NameFrom() string {
	_, name := header.ParseAddress(m.header.Get(header.From))
	return header.Decode(name)
}

// AddressFrom returns the email address of the first From address.
func (m *Message) AddressFrom() string {
	address, _ := header.ParseAddress(m.header.Get(header.From))
	return address
}

// NameTo returns the decoded display name of the first To address.
func (m *Message) NameTo() string {
	_, name := header.ParseAddress(m.header.Get(header.To))
	return header.Decode(name)
}

// AddressTo returns the email address of the first To address.
func (m *Message) AddressTo() string {
	address, _ := header.ParseAddress(m.header.Get(header.To))
	return address
}

// ReadText is the same as calling ReadText on the Body().
func (m *Message) ReadText() (string, error) {
	return ReadText(m.body)
}

// ReadHTML is the same as calling ReadHTML on the Body().
func (m *Message) ReadHTML() (string, error) {
	return ReadHTML(m.body)
}

// StructureJSON returns the Structure of the body as indented JSON.
func (m *Message) StructureJSON() string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(Structure(m.body)); err != nil {
		return err.Error()
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Dump returns a human-readable summary of the message: the date, subject,
// sender and recipient, the structure of the body and its text. A date that
// cannot be parsed is left blank and undecodable text is shown as far as it
// could be decoded.
func (m *Message) Dump() string {
	var date string
	if t, err := m.Date(); err == nil {
		date = t.Format(time.RFC1123Z)
	}

	text, _ := m.ReadText()

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Date        : %s\n", date)
	fmt.Fprintf(sb, "Subject     : %s\n", m.Subject())
	fmt.Fprintf(sb, "NameFrom    : %s\n", m.NameFrom())
	fmt.Fprintf(sb, "AddressFrom : %s\n", m.AddressFrom())
	fmt.Fprintf(sb, "NameTo      : %s\n", m.NameTo())
	fmt.Fprintf(sb, "AddressTo   : %s\n", m.AddressTo())
	fmt.Fprintf(sb, "Structure   : \n%s\n", m.StructureJSON())
	fmt.Fprintf(sb, "Body (Text) : \n%s\n", text)

	return sb.String()
}
