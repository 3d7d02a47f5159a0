package header

import (
	"regexp"
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// looseAddress finds something that looks like an email address, along with
// any brackets wrapped around it.
var looseAddress = regexp.MustCompile(`[<(\[]*[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*[>)\]]*`)

// ParseAddress pulls the first mailbox out of an address field body and
// returns its email address and display name. The display name is returned
// raw; pass it through Decode if it may hold encoded-words.
//
// A strict RFC 5322 parse is tried first. If that fails, the body is scanned
// for anything resembling an address and whatever surrounds it becomes the
// display name. If nothing resembling an address is found, both values are
// empty.
func ParseAddress(body string) (address, name string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ""
	}

	if al, err := addr.ParseEmailAddressList(body); err == nil && len(al) > 0 {
		if a := al[0]; a.Address() != "" {
			return a.Address(), a.DisplayName()
		}
	}

	loc := looseAddress.FindStringIndex(body)
	if loc == nil {
		return "", ""
	}

	match := body[loc[0]:loc[1]]
	name = strings.TrimSpace(body[:loc[0]] + body[loc[1]:])
	name = strings.Trim(name, `"`)
	address = strings.Trim(match, "<>()[] \t\n\r\x00\x0b")
	return address, name
}
