package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailbody/message/header"
)

func TestBreak_Bytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{}, header.Meh.Bytes())
	assert.Equal(t, []byte{0x0d, 0x0a}, header.CRLF.Bytes())
	assert.Equal(t, []byte{0x0a}, header.LF.Bytes())
	assert.Equal(t, []byte{0x0d}, header.CR.Bytes())
	assert.Equal(t, []byte{0x0a, 0x0d}, header.LFCR.Bytes())
}

func TestBreak_Blank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("\r\n\r\n"), header.CRLF.Blank())
	assert.Equal(t, []byte("\n\n"), header.LF.Blank())
	assert.Equal(t, []byte{}, header.Meh.Blank())
}
