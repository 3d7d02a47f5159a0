package transfer

import (
	"encoding/base64"
	"io"
)

// blankStripper drops spaces and tabs, which some clients leave at the ends
// of base64 lines. The base64 decoder already skips CR and LF.
type blankStripper struct {
	r io.Reader
}

func (bs *blankStripper) Read(p []byte) (int, error) {
	for {
		n, err := bs.r.Read(p)
		j := 0
		for _, c := range p[:n] {
			if c != ' ' && c != '\t' {
				p[j] = c
				j++
			}
		}

		if j > 0 || err != nil || n == 0 {
			return j, err
		}
	}
}

// NewBase64Decoder will translate all bytes read from the given io.Reader as
// base64 and return the binary data to the returned io.Reader. Line breaks
// and blanks between the encoded characters are ignored. Any other character
// outside the base64 alphabet is reported as an error from Read.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, &blankStripper{r})
}
