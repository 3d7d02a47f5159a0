// Package walk processes a tree of message parts, handing each part to a
// callback along with the parts that enclose it.
package walk

import (
	"strings"

	"github.com/zostay/go-mailbody/message"
)

// Processor is a callback that can be passed to the AndProcess() function to
// do any kind of generic processing of a message and its sub-parts.
//
// The Processor is given a part and the ancestry of the part, outermost
// first. If len(parents) is zero, then this is the part that AndProcess() was
// called upon, which might not be the root of the message.
//
// The Processor may return an error to cause AndProcess() to terminate
// immediately and return that error.
type Processor func(part message.Part, parents []message.Part) error

// AndProcess will walk the parts tree of a message (or a part of a message)
// in pre-order and call the given Processor function for each part found. It
// will terminate once all parts have been processed and return nil. If the
// Processor function returns an error, it will terminate early and return
// that error.
func AndProcess(
	processor Processor,
	msg message.Part,
) error {
	parents := make([]message.Part, 0, message.DefaultMaxMultipartDepth)
	return andProcess(processor, msg, parents)
}

func andProcess(
	processor Processor,
	part message.Part,
	parents []message.Part,
) error {
	err := processor(part, parents)
	if err != nil {
		return err
	}

	if part.IsMultipart() {
		parents = append(parents, part)
		for _, subPart := range part.GetParts() {
			err := andProcess(processor, subPart, parents)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// MediaPath names a part by the media types leading to it, e.g.,
// "multipart/mixed > multipart/alternative > text/plain".
func MediaPath(part message.Part, parents []message.Part) string {
	names := make([]string, 0, len(parents)+1)
	for _, p := range parents {
		names = append(names, p.MediaType())
	}
	names = append(names, part.MediaType())
	return strings.Join(names, " > ")
}
