package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zostay/go-mailbody/message"
)

var (
	rootCmd = &cobra.Command{
		Use:          "mailbody",
		Short:        "Inspect the structure and text of email messages",
		SilenceUsage: true,
	}

	cfgFile string
	cfg     = &Config{}
	logger  = zerolog.Nop()
)

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"max-depth":          "max_depth",
	"max-part-length":    "max_part_length",
	"default-media-type": "default_media_type",
	"log-level":          "log.level",
	"log-format":         "log.format",
	"log-file":           "log.file",
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (setup refers to rootCmd).
	rootCmd.PersistentPreRunE = setup

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./mailbody.yaml)")
	pf.Int("max-depth", message.DefaultMaxMultipartDepth, "maximum multipart nesting to parse (-1 for unlimited)")
	pf.Int("max-part-length", message.DefaultMaxPartLength, "maximum length of a single part in bytes")
	pf.String("default-media-type", message.DefaultMediaType, "media type of parts without a Content-type")
	pf.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console or json)")
	pf.String("log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(structureCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(partsCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(checkCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	c, err := LoadConfig(v, cfgFile)
	if err != nil {
		return err
	}

	cfg = c
	logger = NewLogger(cmd.ErrOrStderr(), cfg.Log)
	logger.Debug().
		Str("config", v.ConfigFileUsed()).
		Int("max_depth", cfg.MaxDepth).
		Int("max_part_length", cfg.MaxPartLength).
		Msg("configuration loaded")

	return nil
}

// readMessage parses the named message file, or standard input when the name
// is "-".
func readMessage(cmd *cobra.Command, path string) (*message.Message, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open message: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	m, err := message.Parse(r, cfg.ParseOptions(logger.With().Str("path", path).Logger())...)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Str("media_type", m.Body().MediaType()).
		Msg("parsed message")

	return m, nil
}

// Execute runs the mailbody command.
func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
