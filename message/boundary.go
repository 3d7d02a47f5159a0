package message

import (
	"bufio"
	"bytes"
	"errors"

	"github.com/zostay/go-mailbody/internal/scanner"
	"github.com/zostay/go-mailbody/message/header"
	"github.com/zostay/go-mailbody/message/header/param"
)

const partCutset = "- \t\r\n\v"

// SplitMultipart breaks a multipart body into the raw bytes of each of its
// parts, in order. The boundary is taken from the boundary parameter of the
// given Content-type header field body.
//
// The body is split on every "--" + boundary delimiter. The preamble before
// the first delimiter and the epilogue after the close delimiter are
// discarded. Each part has surrounding hyphens and whitespace trimmed and
// parts left empty by that trimming are dropped.
//
// It returns ErrNoBoundary if the Content-type has no boundary or the
// boundary never appears in the body. It returns ErrLargePart along with the
// parts read so far if a part is longer than WithMaxPartLength permits.
func SplitMultipart(contentType string, body []byte, opts ...ParseOption) ([][]byte, error) {
	return newParser(opts).splitMultipart(param.Parse(contentType).Boundary(), body)
}

func (pr *parser) splitMultipart(boundary string, body []byte) ([][]byte, error) {
	if boundary == "" {
		return nil, ErrNoBoundary
	}

	ps := &partSplitter{
		delim:    []byte("--" + boundary),
		preamble: true,
	}

	chunk := pr.chunkSize
	if chunk <= 0 || chunk > pr.maxPartLen {
		chunk = pr.maxPartLen
	}

	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, chunk), pr.maxPartLen)
	sc.Split(scanner.SkipEmpty(ps.split))

	var parts [][]byte
	for sc.Scan() {
		parts = append(parts, bytes.Clone(sc.Bytes()))
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return parts, ErrLargePart
		}
		return parts, err
	}

	if ps.preamble {
		return nil, ErrNoBoundary
	}

	return parts, nil
}

// partSplitter is a bufio.SplitFunc that returns the parts of a multipart
// body found between delimiters. Pieces that hold no part are returned as a
// nil token, so it must be wrapped in scanner.SkipEmpty.
type partSplitter struct {
	delim []byte

	// preamble is true until the first delimiter has been found.
	preamble bool
}

func (ps *partSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// "--" right after a delimiter makes it the close delimiter
	if !ps.preamble {
		if len(data) < 2 && !atEOF {
			return 0, nil, nil
		}
		if bytes.HasPrefix(data, []byte("--")) {
			return len(data), nil, bufio.ErrFinalToken
		}
	}

	ix, more := ps.index(data, atEOF)
	if more {
		return 0, nil, nil
	}

	if ix < 0 {
		if ps.preamble {
			return len(data), nil, nil
		}
		return len(data), trimPart(data), nil
	}

	advance := ix + len(ps.delim)
	if ps.preamble {
		ps.preamble = false
		return advance, nil, nil
	}

	return advance, trimPart(data[:ix]), nil
}

// index finds the next delimiter in data. A delimiter only counts when it is
// followed by whitespace, a line break, "--", or the end of the input, so a
// boundary that is a prefix of another boundary is not confused with it. When
// more is true, there is not enough data to decide.
func (ps *partSplitter) index(data []byte, atEOF bool) (ix int, more bool) {
	off := 0
	for {
		i := bytes.Index(data[off:], ps.delim)
		if i < 0 {
			return -1, !atEOF
		}

		i += off
		end := i + len(ps.delim)
		switch {
		case end == len(data):
			if !atEOF {
				return -1, true
			}
			return i, false
		case data[end] == '-':
			if end+1 == len(data) {
				if !atEOF {
					return -1, true
				}
			} else if data[end+1] == '-' {
				return i, false
			}
		case isDelimEnd(data[end]):
			return i, false
		}

		off = end
	}
}

func isDelimEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// trimPart removes the remainder of the delimiter line from the front of a
// part and the hyphens and whitespace from its end. It returns nil when no
// part remains.
func trimPart(piece []byte) []byte {
	if len(bytes.Trim(piece, partCutset)) == 0 {
		return nil
	}

	piece = bytes.TrimLeft(piece, " \t")
	for _, b := range header.Breaks {
		if bytes.HasPrefix(piece, b.Bytes()) {
			piece = piece[len(b.Bytes()):]
			break
		}
	}

	return bytes.TrimRight(piece, partCutset)
}
