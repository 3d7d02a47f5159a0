package message

import (
	"strings"
)

// Structure describes the shape of the part tree in a form that encodes
// naturally as JSON.
//
// A leaf becomes a one element []string holding its media type. A multipart
// part with sub-parts becomes a map[string][]any from its media type to the
// structures of its sub-parts, in order. A multipart part without sub-parts
// becomes an empty []string.
//
// For example, a multipart/mixed part holding a text/plain part and a
// text/html part encodes as:
//
//	{"multipart/mixed":[["text/plain"],["text/html"]]}
func Structure(p Part) any {
	if !p.IsMultipart() {
		return []string{p.MediaType()}
	}

	parts := p.GetParts()
	if len(parts) == 0 {
		return []string{}
	}

	children := make([]any, len(parts))
	for i, sp := range parts {
		children[i] = Structure(sp)
	}

	return map[string][]any{
		p.MediaType(): children,
	}
}

func matchesType(p Part, mt string) bool {
	return p.MediaType() == strings.ToLower(mt)
}

// FindFirst searches the tree, depth-first in pre-order, and returns the first
// part with the given media type. It returns nil if there is none.
func FindFirst(p Part, mediaType string) Part {
	if matchesType(p, mediaType) {
		return p
	}

	for _, sp := range p.GetParts() {
		if found := FindFirst(sp, mediaType); found != nil {
			return found
		}
	}

	return nil
}

// FindAll searches the tree, depth-first in pre-order, and returns every part
// with the given media type. The parts returned are not decoded.
func FindAll(p Part, mediaType string) []Part {
	var found []Part
	findAll(p, strings.ToLower(mediaType), &found)
	return found
}

func findAll(p Part, mt string, found *[]Part) {
	if p.MediaType() == mt {
		*found = append(*found, p)
	}

	for _, sp := range p.GetParts() {
		findAll(sp, mt, found)
	}
}

// ReadSpecificContentOne searches the tree, depth-first in pre-order, for the
// first part with the given media type that has non-empty content and
// returns that content as a string. A part whose content decodes to nothing
// is skipped. If nothing is found, it returns an empty string.
//
// If the content of a matching part cannot be decoded, the search stops and
// the best-effort content is returned with the *DecodeError.
//
// Use FindFirst to tell a missing part from a part with empty content.
func ReadSpecificContentOne(p Part, mediaType string) (string, error) {
	if matchesType(p, mediaType) {
		b, err := p.Content()
		return string(b), err
	}

	for _, sp := range p.GetParts() {
		s, err := ReadSpecificContentOne(sp, mediaType)
		if err != nil || s != "" {
			return s, err
		}
	}

	return "", nil
}

// ReadHTML returns the content of the first text/html part with any content.
func ReadHTML(p Part) (string, error) {
	return ReadSpecificContentOne(p, "text/html")
}

// ReadText returns the text of the message. The content of the first
// text/plain part with any content is preferred, trimmed of surrounding
// whitespace. Failing that, the first text/html part is converted to text
// with HTMLToText. If neither exists, the result is empty.
//
// A decode error is returned with whatever text could be recovered.
func ReadText(p Part) (string, error) {
	text, err := ReadSpecificContentOne(p, "text/plain")
	if err != nil || text != "" {
		return strings.TrimSpace(text), err
	}

	html, err := ReadHTML(p)
	if html == "" {
		return "", err
	}

	return HTMLToText(html), err
}
