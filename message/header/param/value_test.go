package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailbody/message/header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	pv := param.Parse("Text/Plain; charset=\"ISO-2022-JP\"; format=flowed")
	assert.Equal(t, "text/plain", pv.Value())
	assert.Equal(t, "text/plain", pv.MediaType())
	assert.Equal(t, "text", pv.Type())
	assert.Equal(t, "plain", pv.Subtype())
	assert.False(t, pv.IsMultipart())
	assert.Equal(t, "charset=\"ISO-2022-JP\"; format=flowed", pv.Parameters())
	assert.Equal(t, "ISO-2022-JP", pv.Charset())
	assert.Equal(t, "flowed", pv.Parameter("FORMAT"))
	assert.Equal(t, "", pv.Boundary())
	assert.Equal(t, "Text/Plain; charset=\"ISO-2022-JP\"; format=flowed", pv.String())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	pv := param.Parse("")
	assert.Equal(t, "", pv.MediaType())
	assert.Equal(t, "", pv.Type())
	assert.Equal(t, "", pv.Subtype())
	assert.Equal(t, "", pv.Parameters())
	assert.Equal(t, "", pv.Charset())
}

func TestValue_Boundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		boundary string
	}{
		{"multipart/mixed; boundary=abc123", "abc123"},
		{"multipart/mixed;boundary=abc123", "abc123"},
		{"multipart/alternative;\nboundary=\"000000000000b2b3\"", "000000000000b2b3"},
		{"multipart/mixed; BOUNDARY=\"a b;c\"; charset=utf-8", "a b;c"},
		{"multipart/related; type=\"text/html\"; boundary=<--==_mimepart>", "--==_mimepart"},
		{"multipart/mixed", ""},
		{"multipart/mixed; xboundary=nope", ""},
	}

	for _, tc := range tests {
		pv := param.Parse(tc.in)
		assert.True(t, pv.IsMultipart(), tc.in)
		assert.Equal(t, tc.boundary, pv.Boundary(), tc.in)
	}
}

func TestValue_Charset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "utf-8", param.Parse("text/plain; charset=utf-8").Charset())
	assert.Equal(t, "Shift_JIS", param.Parse("text/plain; CharSet=\"Shift_JIS\"").Charset())
	assert.Equal(t, "us-ascii", param.Parse("text/plain; format=flowed; charset=us-ascii").Charset())
}
