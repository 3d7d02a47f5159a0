package cmd_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailbody/message"
	"github.com/zostay/go-mailbody/tools/mailbody/cmd"
)

const attachMsg = `Subject: attachments
Content-Type: multipart/mixed; boundary=mix

--mix
Content-Type: text/plain; charset=iso-8859-1
Content-Transfer-Encoding: quoted-printable

caf=E9
--mix
Content-Type: application/pdf; name="a.pdf"

%PDF-1.
--mix
Content-Type: image/gif
Content-Disposition: attachment; filename="pixel.gif"
Content-Transfer-Encoding: base64

R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7
--mix
Content-Type: multipart/alternative

--mix--
`

func TestRenderParts(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, cmd.RenderParts(buf, message.ParseBytes([]byte(attachMsg)).Body()))
	assert.Equal(t,
		`[0] multipart/mixed boundary="mix" parts=4`+"\n"+
			`  [0] text/plain charset=iso-8859-1 encoding=quoted-printable size=6`+"\n"+
			`  [1] application/pdf charset=UTF-8 encoding=7bit size=7 filename="a.pdf"`+"\n"+
			`  [2] image/gif charset=UTF-8 encoding=base64 size=56 filename="pixel.gif"`+"\n"+
			`  [3] multipart/alternative boundary="" parts=0 error="`+message.ErrNoBoundary.Error()+`"`+"\n",
		buf.String(),
	)
}

func TestRenderFind(t *testing.T) {
	t.Parallel()

	body := message.ParseBytes([]byte(attachMsg)).Body()

	buf := &bytes.Buffer{}
	n, err := cmd.RenderFind(buf, body, "TEXT/PLAIN", true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "multipart/mixed > text/plain\ncafé\n\n", buf.String())

	buf.Reset()
	n, err = cmd.RenderFind(buf, body, "application/pdf", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "multipart/mixed > application/pdf\n", buf.String())

	buf.Reset()
	n, err = cmd.RenderFind(buf, body, "text/html", true)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "", buf.String())
}

func TestDiffDump(t *testing.T) {
	t.Parallel()

	diff, same := cmd.DiffDump("a\nb\nc\n", "a\nb\nc\n")
	assert.True(t, same)
	assert.Equal(t, "", diff)

	diff, same = cmd.DiffDump("a\nb\nc\n", "a\nB\nc\n")
	assert.False(t, same)
	assert.Equal(t, "  a\n- b\n+ B\n  c\n", diff)
}

func TestDiffDump_Golden(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile("../../../message/testdata/gmail.dump")
	require.NoError(t, err)

	raw, err := os.ReadFile("../../../message/testdata/gmail.eml")
	require.NoError(t, err)

	_, same := cmd.DiffDump(string(want), message.ParseBytes(raw).Dump())
	assert.True(t, same)
}
