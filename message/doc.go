// Package message is the heart of this library. It parses email messages
// into a tree of parts and reads decoded content out of that tree. Parsing is
// flexible: it survives input that is not strictly correct, degrading only
// the parts that are broken.
//
// A whole message is parsed with Parse or ParseBytes:
//
//	msg, err := message.Parse(in)
//	if err != nil {
//	  panic(err)
//	}
//
//	fmt.Println(msg.Subject())
//
//	text, err := msg.ReadText()
//	if err != nil {
//	  fmt.Println("some of the text could not be decoded:", err)
//	}
//	fmt.Println(text)
//
// A body whose header has already been parsed can be turned into a part tree
// with NewPart. Every part is either an *Opaque, which holds content, or a
// *Multipart, which holds sub-parts. Content is decoded lazily: nothing is
// transfer decoded or transcoded until Content() is called.
//
// The tree may be searched with FindFirst and FindAll, read with ReadText,
// ReadHTML, and ReadSpecificContentOne, and summarized with Structure.
package message
