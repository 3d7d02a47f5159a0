package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailbody/message"
	"github.com/zostay/go-mailbody/message/header/param"
	"github.com/zostay/go-mailbody/message/walk"
	"github.com/zostay/go-mailbody/message/walker"
)

var (
	partsCmd = &cobra.Command{
		Use:   "parts message",
		Short: "List every part of a message",
		Args:  cobra.ExactArgs(1),
		RunE:  RunParts,
	}

	findCmd = &cobra.Command{
		Use:   "find media-type message",
		Short: "Show the parts of a message with the given media type",
		Args:  cobra.ExactArgs(2),
		RunE:  RunFind,
	}

	showContent bool
)

func init() {
	findCmd.Flags().BoolVarP(&showContent, "content", "c", false, "print the decoded content of each part found")
}

func RunParts(cmd *cobra.Command, args []string) error {
	m, err := readMessage(cmd, args[0])
	if err != nil {
		return err
	}

	return RenderParts(cmd.OutOrStdout(), m.Body())
}

func RunFind(cmd *cobra.Command, args []string) error {
	m, err := readMessage(cmd, args[1])
	if err != nil {
		return err
	}

	n, err := RenderFind(cmd.OutOrStdout(), m.Body(), args[0], showContent)
	if err != nil {
		return err
	}

	logger.Info().Str("media_type", args[0]).Int("found", n).Msg("search complete")
	return nil
}

// Filename returns the file name of an attachment from the
// Content-disposition filename parameter, falling back to the Content-type
// name parameter.
func Filename(part message.Part) string {
	h := part.GetHeader()
	if fn := param.Parse(h.Get("Content-disposition")).Parameter("filename"); fn != "" {
		return fn
	}
	return param.Parse(h.GetContentType()).Parameter("name")
}

// RenderParts writes one line per part, indented by depth.
func RenderParts(w io.Writer, p message.Part) error {
	var pw walker.PartWalker = func(depth, i int, part message.Part) error {
		sb := &strings.Builder{}
		fmt.Fprintf(sb, "%s[%d] %s", strings.Repeat("  ", depth), i, part.MediaType())

		switch pt := part.(type) {
		case *message.Multipart:
			fmt.Fprintf(sb, " boundary=%q parts=%d", pt.Boundary(), len(pt.GetParts()))
			if err := pt.Err(); err != nil {
				sb.WriteString(" error=" + strconv.Quote(err.Error()))
			}
		case *message.Opaque:
			fmt.Fprintf(sb, " charset=%s encoding=%s size=%d",
				pt.Charset(), pt.TransferEncoding(), len(pt.RawContent()))
			if fn := Filename(pt); fn != "" {
				sb.WriteString(" filename=" + strconv.Quote(fn))
			}
		}

		_, err := fmt.Fprintln(w, sb.String())
		return err
	}

	return pw.Walk(p)
}

// RenderFind writes the media path of every part with the given media type
// and, if content is true, the decoded content of each. It returns the number
// of parts found.
func RenderFind(w io.Writer, p message.Part, mediaType string, content bool) (int, error) {
	mt := strings.ToLower(mediaType)
	found := 0
	err := walk.AndProcess(
		func(part message.Part, parents []message.Part) error {
			if part.MediaType() != mt {
				return nil
			}

			found++
			if _, err := fmt.Fprintln(w, walk.MediaPath(part, parents)); err != nil {
				return err
			}

			if !content || part.IsMultipart() {
				return nil
			}

			c, err := part.Content()
			if err != nil {
				logger.Warn().Err(err).Str("media_type", mt).Msg("content could not be fully decoded")
			}

			_, err = fmt.Fprintf(w, "%s\n\n", c)
			return err
		}, p)

	return found, err
}
