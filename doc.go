// Package mailbody reads email messages. It parses the header and MIME body
// of a message into a tree of parts and provides decoded, UTF-8 views of the
// text found in that tree. Parsing is lenient: a broken part degrades only
// itself, never the rest of the message.
//
// The work is split according to part of the message. The message package
// holds the part tree (message.Part, which is either a message.Opaque leaf
// or a message.Multipart branch), the parser, and the functions for
// searching and reading the tree. Beneath it, message/header reads header
// fields, message/header/param reads parameterized field bodies like
// Content-type, message/transfer undoes Content-transfer-encodings, and
// message/charset transcodes text to UTF-8. The message/walker and
// message/walk packages visit every part of a tree.
//
// The mailbody command in tools/mailbody inspects messages from the command
// line using this library.
package mailbody
