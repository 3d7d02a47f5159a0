package header

import (
	"bytes"
	"regexp"
	"strings"
)

// fieldLine matches the start of a header field: a name made of printable
// characters other than the colon, a colon, and the rest of the line.
var fieldLine = regexp.MustCompile(`^([!-9;-~]+):[ \t]*(.*)$`)

// Parse reads a header block into a Header. The block is split into lines
// using the given line break (a trailing "\r" left by a mismatched break is
// discarded).
//
// A line that looks like "Name: value" begins a new field. A line that
// starts with whitespace, or that does not look like a field at all, is a
// continuation: it is trimmed and appended to the most recent field after a
// "\n". Continuation lines seen before any field are dropped.
//
// Parse never fails. Malformed lines simply degrade into continuations.
func Parse(m []byte, lb Break) *Header {
	if lb == Meh {
		lb = LF
	}

	h := &Header{lbr: lb}
	if len(m) == 0 {
		return h
	}

	var last *Field
	for _, raw := range bytes.Split(m, lb.Bytes()) {
		line := strings.TrimRight(string(raw), "\r")
		if line == "" {
			continue
		}

		if line[0] != ' ' && line[0] != '\t' {
			if match := fieldLine.FindStringSubmatch(line); match != nil {
				last = &Field{Name: match[1], Body: strings.TrimRight(match[2], " \t")}
				h.fields = append(h.fields, last)
				continue
			}
		}

		if last != nil {
			last.Body += "\n" + strings.TrimSpace(line)
		}
	}

	return h
}
