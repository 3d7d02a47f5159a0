package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailbody/message"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump message",
		Short: "Summarize the header, structure, and text of a message",
		Args:  cobra.ExactArgs(1),
		RunE:  RunDump,
	}

	structureCmd = &cobra.Command{
		Use:   "structure message",
		Short: "Show the part structure of a message as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  RunStructure,
	}

	textCmd = &cobra.Command{
		Use:   "text message",
		Short: "Show the text of a message",
		Args:  cobra.ExactArgs(1),
		RunE:  RunText,
	}

	htmlCmd = &cobra.Command{
		Use:   "html message",
		Short: "Show the HTML of a message",
		Args:  cobra.ExactArgs(1),
		RunE:  RunHTML,
	}
)

func RunDump(cmd *cobra.Command, args []string) error {
	m, err := readMessage(cmd, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), m.Dump())
	return err
}

func RunStructure(cmd *cobra.Command, args []string) error {
	m, err := readMessage(cmd, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), m.StructureJSON())
	return err
}

func RunText(cmd *cobra.Command, args []string) error {
	return printContent(cmd, args[0], (*message.Message).ReadText)
}

func RunHTML(cmd *cobra.Command, args []string) error {
	return printContent(cmd, args[0], (*message.Message).ReadHTML)
}

// printContent prints what read finds. Content that is only partly decodable
// is printed anyway, with a warning.
func printContent(cmd *cobra.Command, path string, read func(*message.Message) (string, error)) error {
	m, err := readMessage(cmd, path)
	if err != nil {
		return err
	}

	s, err := read(m)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("content could not be fully decoded")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
