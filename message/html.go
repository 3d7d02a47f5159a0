package message

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	scriptBlock = regexp.MustCompile(`(?is)<script.*?>.*?</script.*?>`)
	styleBlock  = regexp.MustCompile(`(?is)<style.*?>.*?</style.*?>`)
)

// HTMLToText turns HTML into plain text. Script blocks are removed, then
// style blocks, then every remaining tag, comment, and doctype. Text between
// tags is kept exactly as written, entities included, and the result is
// trimmed of surrounding whitespace.
func HTMLToText(s string) string {
	s = scriptBlock.ReplaceAllString(s, "")
	s = styleBlock.ReplaceAllString(s, "")

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(z.Raw())
		}
	}
}
