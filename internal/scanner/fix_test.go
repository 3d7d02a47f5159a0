package scanner_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailbody/internal/scanner"
)

// splitOnComma yields comma separated words but refuses to return empty
// words, which would end a plain bufio.Scanner early at EOF.
func splitOnComma(data []byte, atEOF bool) (int, []byte, error) {
	if ix := bytes.IndexByte(data, ','); ix >= 0 {
		if ix == 0 {
			return 1, nil, nil
		}
		return ix + 1, data[:ix], nil
	}

	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func TestSkipEmpty(t *testing.T) {
	t.Parallel()

	sc := bufio.NewScanner(strings.NewReader("a,,,b,c,,"))
	sc.Split(scanner.SkipEmpty(splitOnComma))

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}

	assert.NoError(t, sc.Err())
	assert.Equal(t, []string{"a", "b", "c"}, words)
}

func TestSkipEmpty_Nothing(t *testing.T) {
	t.Parallel()

	sc := bufio.NewScanner(strings.NewReader(",,,,"))
	sc.Split(scanner.SkipEmpty(splitOnComma))

	assert.False(t, sc.Scan())
	assert.NoError(t, sc.Err())
}
