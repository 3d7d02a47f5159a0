package message_test

import (
	"errors"
	"os"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mailbody/message"
)

func parseFile(t *testing.T, fn string) *message.Message {
	t.Helper()

	f, err := os.Open(fn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	m, err := message.Parse(f)
	require.NoError(t, err)
	return m
}

func TestParse_Gmail(t *testing.T) {
	t.Parallel()

	m := parseFile(t, "testdata/gmail.eml")

	assert.Equal(t, "おにぎり", m.Subject())
	assert.Equal(t, "Sender", m.NameFrom())
	assert.Equal(t, "sender@fromgmail.test", m.AddressFrom())
	assert.Equal(t, "受信者", m.NameTo())
	assert.Equal(t, "receiver@example.test", m.AddressTo())
	assert.Equal(t, "1.0", m.Header().Get("mime-version"))

	date, err := m.Date()
	require.NoError(t, err)
	assert.True(t, time.Date(2019, time.March, 4, 3, 30, 0, 0, time.UTC).Equal(date))

	body := m.Body()
	assert.True(t, body.IsMultipart())
	assert.Equal(t, "multipart/alternative", body.MediaType())
	require.Len(t, body.GetParts(), 2)

	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Contains(t, text, "めんたいこ")
	assert.Equal(t, "おにぎりの具はめんたいこが好きです。", text)

	html, err := m.ReadHTML()
	require.NoError(t, err)
	assert.Equal(t, "<div>おにぎりの具は<b>めんたいこ</b>が好きです。</div>", html)
}

func TestParse_Docomo(t *testing.T) {
	t.Parallel()

	m := parseFile(t, "testdata/docomo.eml")

	assert.Equal(t, "ステーキ", m.Subject())
	assert.Equal(t, "", m.NameFrom())
	assert.Equal(t, "sender@fromdocomo.test", m.AddressFrom())
	assert.Equal(t, "receiver@example.test", m.AddressTo())

	assert.Equal(t,
		map[string][]any{"multipart/mixed": {[]string{"text/plain"}, []string{"image/gif"}}},
		message.Structure(m.Body()),
	)

	plain := message.FindFirst(m.Body(), "text/plain")
	require.NotNil(t, plain)
	assert.Equal(t, "ISO-2022-JP", plain.Charset())

	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Contains(t, text, "ミディアムレア")
	assert.Equal(t, "ミディアムレアでお願いします", text)

	gif := message.FindFirst(m.Body(), "image/gif")
	require.NotNil(t, gif)
	assert.Equal(t, `attachment; filename="steak.gif"`, gif.GetHeader().Get("Content-Disposition"))

	c, err := gif.Content()
	require.NoError(t, err)
	assert.Equal(t, []byte("GIF89a"), c[:6])
}

func TestParse_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := message.Parse(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestParseBytes_Leaf(t *testing.T) {
	t.Parallel()

	m := message.ParseBytes([]byte("Subject: =?utf-8?q?caf=C3=A9?=\nContent-Type: text/plain\n\nHello\n"))
	assert.Equal(t, "café", m.Subject())
	assert.False(t, m.Body().IsMultipart())

	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)

	_, err = m.Date()
	assert.Error(t, err)
}

func TestParseBytes_Options(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/gmail.eml")
	require.NoError(t, err)

	m := message.ParseBytes(raw, message.WithoutMultipart())
	assert.Equal(t, "おにぎり", m.Subject())
	assert.Nil(t, m.Body().GetParts())
	assert.ErrorIs(t, m.Body().(*message.Multipart).Err(), message.ErrMaxDepth)
}

func TestMessage_Dump(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile("testdata/gmail.dump")
	require.NoError(t, err)

	m := parseFile(t, "testdata/gmail.eml")
	assert.Equal(t, string(want), m.Dump())
}

func TestMessage_DumpBadDate(t *testing.T) {
	t.Parallel()

	m := message.ParseBytes([]byte("From: a@example.test\nDate: whenever\n\nhi"))
	assert.Equal(t,
		"Date        : \n"+
			"Subject     : \n"+
			"NameFrom    : \n"+
			"AddressFrom : a@example.test\n"+
			"NameTo      : \n"+
			"AddressTo   : \n"+
			"Structure   : \n"+
			"[\n    \"application/octet-stream\"\n]\n"+
			"Body (Text) : \n"+
			"\n",
		m.Dump(),
	)
}
