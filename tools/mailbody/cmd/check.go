package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check golden message",
		Short: "Compare the dump of a message with a golden file",
		Args:  cobra.ExactArgs(2),
		RunE:  RunCheck,
	}

	updateGolden bool

	// ErrDumpMismatch is returned by check when the dump differs from the
	// golden file.
	ErrDumpMismatch = errors.New("dump does not match golden file")
)

func init() {
	checkCmd.Flags().BoolVarP(&updateGolden, "update", "u", false, "write the dump to the golden file instead of comparing")
}

func RunCheck(cmd *cobra.Command, args []string) error {
	golden, path := args[0], args[1]

	m, err := readMessage(cmd, path)
	if err != nil {
		return err
	}

	got := m.Dump()
	if updateGolden {
		if err := os.WriteFile(golden, []byte(got), 0o644); err != nil {
			return fmt.Errorf("unable to write golden file: %w", err)
		}
		logger.Info().Str("golden", golden).Msg("golden file updated")
		return nil
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		return fmt.Errorf("unable to read golden file: %w", err)
	}

	diff, same := DiffDump(string(want), got)
	if same {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", path)
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n+++ %s\n%s", golden, path, diff)
	return ErrDumpMismatch
}

// DiffDump compares two dumps line by line. It returns true if they are the
// same. Otherwise, it returns every line prefixed with "- " if only in want,
// "+ " if only in got, or two spaces if in both.
func DiffDump(want, got string) (string, bool) {
	if want == got {
		return "", true
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	sb := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String(), false
}
