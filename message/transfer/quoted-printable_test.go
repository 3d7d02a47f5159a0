package transfer_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailbody/message/transfer"
)

// we only need to test that qp is being applied, not that the decoding is
// working correctly

var qpEnc = []byte("=3D>?=\r\nsoft")
var qpDec = []byte("=>?soft")

func TestNewQuotedPrintableDecoder(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader(qpEnc)
	qpdr := transfer.NewQuotedPrintableDecoder(r)
	db, err := io.ReadAll(qpdr)
	assert.NoError(t, err)
	assert.Equal(t, qpDec, db)
}
