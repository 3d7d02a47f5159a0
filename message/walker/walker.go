// Package walker provides depth-first walks over a tree of message parts that
// report the depth and sibling index of every part visited.
package walker

import (
	"github.com/zostay/go-mailbody/message"
)

// PartWalker is a function that can be processed for each part of a message.
// The depth is 0 for the part the walk starts at and the index is the
// position of the part among its siblings.
type PartWalker func(depth, i int, part message.Part) error

// Walk performs a depth first search for all the parts of a message starting
// with the given part itself. It calls the PartWalker for each part in
// pre-order. If the PartWalker returns an error, then processing stops
// immediately and the error is returned.
func (w PartWalker) Walk(msg message.Part) error {
	type part struct {
		depth int
		i     int
		part  message.Part
	}

	openStack := make([]part, 0, message.DefaultMaxMultipartDepth)

	pushStack := func(depth int, msg message.Part) {
		parts := msg.GetParts()
		for i := len(parts) - 1; i >= 0; i-- {
			openStack = append(openStack, part{depth, i, parts[i]})
		}
	}

	popStack := func() part {
		end := len(openStack) - 1
		p := openStack[end]
		openStack = openStack[:end]
		return p
	}

	openStack = append(openStack, part{0, 0, msg})
	for len(openStack) > 0 {
		p := popStack()
		if err := w(p.depth, p.i, p.part); err != nil {
			return err
		}
		pushStack(p.depth+1, p.part)
	}

	return nil
}

// WalkOpaque will call the PartWalker function for each leaf part using a
// depth first traversal. It will terminate the walk immediately if the
// PartWalker returns an error and will return the error.
func (w PartWalker) WalkOpaque(msg message.Part) error {
	var opw PartWalker = func(depth, i int, part message.Part) error {
		if !part.IsMultipart() {
			return w(depth, i, part)
		}
		return nil
	}
	return opw.Walk(msg)
}

// WalkMultipart will call the PartWalker function for each multipart part
// using a depth first traversal. It will terminate the walk immediately if the
// PartWalker returns an error and will return that error.
func (w PartWalker) WalkMultipart(msg message.Part) error {
	var mlw PartWalker = func(depth, i int, part message.Part) error {
		if part.IsMultipart() {
			return w(depth, i, part)
		}
		return nil
	}
	return mlw.Walk(msg)
}
