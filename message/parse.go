package message

import (
	"bytes"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zostay/go-mailbody/message/charset"
	"github.com/zostay/go-mailbody/message/header"
	"github.com/zostay/go-mailbody/message/header/param"
	"github.com/zostay/go-mailbody/message/transfer"
)

// Constants related to parse options.
const (
	// DefaultMaxMultipartDepth is the default depth the parser will recurse
	// into a message.
	DefaultMaxMultipartDepth = 10

	// DefaultChunkSize is the initial size of the buffer used while splitting
	// a multipart body into parts.
	DefaultChunkSize = 16_384

	// DefaultMaxPartLength is the default maximum byte length of a single
	// part at any level of a multipart body.
	DefaultMaxPartLength = 32 << 20

	// DefaultMediaType is the media type given to parts without a usable
	// Content-type.
	DefaultMediaType = "application/octet-stream"
)

// Errors recorded on degenerate multipart parts. None of these stop a parse:
// the affected part is kept with no sub-parts and the error is available from
// its Err() method.
var (
	// ErrNoBoundary means the boundary parameter is missing from the
	// Content-type of a multipart part or the boundary is not found in its
	// body.
	ErrNoBoundary = errors.New("the multipart boundary is missing or unmatched")

	// ErrMaxDepth means the multipart part is nested deeper than the
	// configured WithMaxDepth option (or the default,
	// DefaultMaxMultipartDepth) allows.
	ErrMaxDepth = errors.New("the multipart nesting exceeds the maximum parse depth")

	// ErrLargePart means a part is longer than the configured
	// WithMaxPartLength option (or the default, DefaultMaxPartLength).
	ErrLargePart = errors.New("a message part exceeds the maximum parse length")
)

type parser struct {
	maxDepth         int
	maxPartLen       int
	chunkSize        int
	defaultMediaType string
	logger           zerolog.Logger
}

var defaultParser = parser{
	maxDepth:         DefaultMaxMultipartDepth,
	maxPartLen:       DefaultMaxPartLength,
	chunkSize:        DefaultChunkSize,
	defaultMediaType: DefaultMediaType,
	logger:           zerolog.Nop(),
}

func newParser(opts []ParseOption) *parser {
	pr := defaultParser
	for _, opt := range opts {
		opt(&pr)
	}
	return &pr
}

// ParseOption refers to options that may be passed to the parse functions to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxDepth is a ParseOption that controls how deep the parser will go in
// recursively parsing a multipart message. A multipart part found at the
// maximum depth is kept, but without sub-parts. This is set to
// DefaultMaxMultipartDepth by default.
func WithMaxDepth(maxDepth int) ParseOption {
	return func(pr *parser) { pr.maxDepth = maxDepth }
}

// WithoutMultipart is a ParseOption that will not split any multipart part.
// Only use this if you are interested in the top-level header alone.
func WithoutMultipart() ParseOption {
	return func(pr *parser) { pr.maxDepth = 0 }
}

// WithoutRecursion is a ParseOption that will only allow a single level of
// multipart parsing.
func WithoutRecursion() ParseOption {
	return func(pr *parser) { pr.maxDepth = 1 }
}

// WithUnlimitedRecursion is a ParseOption that will allow the parser to parse
// sub-parts of any depth. Only use this on trusted input.
func WithUnlimitedRecursion() ParseOption {
	return func(pr *parser) { pr.maxDepth = -1 }
}

// WithMaxPartLength is a ParseOption that sets the maximum size a single part
// may reach while a multipart body is split. If a part is too large, its
// multipart parent is left with the parts found so far and records
// ErrLargePart. Values less than or equal to 0 restore the default.
func WithMaxPartLength(n int) ParseOption {
	return func(pr *parser) {
		if n <= 0 {
			n = DefaultMaxPartLength
		}
		pr.maxPartLen = n
	}
}

// WithChunkSize is a ParseOption that controls the initial buffer size used
// while splitting multipart bodies. The default chunk size is
// DefaultChunkSize.
func WithChunkSize(chunkSize int) ParseOption {
	return func(pr *parser) { pr.chunkSize = chunkSize }
}

// WithDefaultMediaType is a ParseOption that sets the media type given to
// parts with a missing or empty Content-type. This is DefaultMediaType by
// default. RFC 2045 says such parts are "text/plain", which you may prefer
// when reading old, non-MIME mail.
func WithDefaultMediaType(mt string) ParseOption {
	return func(pr *parser) { pr.defaultMediaType = strings.ToLower(strings.TrimSpace(mt)) }
}

// WithLogger is a ParseOption that sets the logger used to report degenerate
// structure found during the parse (missing boundaries, parts nested too
// deeply, and so on). Nothing is logged by default.
func WithLogger(logger zerolog.Logger) ParseOption {
	return func(pr *parser) { pr.logger = logger }
}

// Split separates a raw message or message part into its header block and
// body block at the first empty line. It also returns the line break that
// empty line was made of, for use in parsing the header. When raw starts with
// a line break, the header is empty and the rest of raw is the body.
//
// The earliest empty line made of any of the breaks in header.Breaks wins. If
// there is no empty line, all of raw is header, the body is empty, and the
// break returned is the first one found in raw (or header.Meh if raw is a
// single line).
func Split(raw []byte) (head, body []byte, lb header.Break) {
	for _, b := range header.Breaks {
		if bytes.HasPrefix(raw, b.Bytes()) {
			return nil, raw[len(b.Bytes()):], b
		}
	}

	pos := -1
	for _, b := range header.Breaks {
		if ix := bytes.Index(raw, b.Blank()); ix >= 0 && (pos < 0 || ix < pos) {
			pos, lb = ix, b
		}
	}

	if pos >= 0 {
		return raw[:pos], raw[pos+len(lb.Blank()):], lb
	}

	for _, b := range header.Breaks {
		if bytes.Contains(raw, b.Bytes()) {
			return raw, nil, b
		}
	}

	return raw, nil, header.Meh
}

// NewPart builds a part from a body and the values of the Content-type and
// Content-transfer-encoding header fields that describe it. A multipart
// Content-type causes the body to be split and each sub-part to be built the
// same way, recursively.
//
// NewPart never fails. Problems found in the structure leave the affected
// multipart part without sub-parts (see Multipart.Err). Problems with the
// transfer encoding or charset are only found when the content is read with
// Content().
func NewPart(body []byte, contentType, transferEncoding string, opts ...ParseOption) Part {
	h := &header.Header{}
	if contentType != "" {
		h.Add(header.ContentType, contentType)
	}
	if transferEncoding != "" {
		h.Add(header.ContentTransferEncoding, transferEncoding)
	}

	return newParser(opts).build(body, h, 0)
}

// build constructs the part described by the given header and body at the
// given depth of multipart nesting.
func (pr *parser) build(body []byte, h *header.Header, depth int) Part {
	pv := param.Parse(h.GetContentType())

	pi := info{
		header:           h,
		mediaType:        pv.MediaType(),
		charset:          charset.UTF8,
		transferEncoding: transfer.Normalize(h.GetTransferEncoding()),
	}
	if pi.mediaType == "" {
		pi.mediaType = pr.defaultMediaType
	}

	content := bytes.TrimSpace(body)

	if strings.HasPrefix(pi.mediaType, "multipart/") {
		return pr.buildMultipart(pi, pv.Boundary(), content, depth)
	}

	if cs := pv.Charset(); cs != "" {
		pi.charset = cs
	}

	return &Opaque{info: pi, content: content}
}

// buildMultipart splits the content on the boundary and builds each sub-part.
func (pr *parser) buildMultipart(pi info, boundary string, content []byte, depth int) *Multipart {
	mm := &Multipart{info: pi, boundary: boundary}

	if pr.maxDepth >= 0 && depth >= pr.maxDepth {
		mm.err = ErrMaxDepth
		pr.logger.Debug().
			Str("media_type", pi.mediaType).
			Int("depth", depth).
			Msg("multipart nested too deeply, sub-parts skipped")
		return mm
	}

	raws, err := pr.splitMultipart(boundary, content)
	if err != nil {
		mm.err = err
		pr.logger.Debug().
			Err(err).
			Str("media_type", pi.mediaType).
			Int("depth", depth).
			Int("parts", len(raws)).
			Msg("multipart body could not be fully split")
	}

	mm.parts = make([]Part, 0, len(raws))
	for _, raw := range raws {
		head, sub, lb := Split(raw)
		mm.parts = append(mm.parts, pr.build(sub, header.Parse(head, lb), depth+1))
	}

	return mm
}
