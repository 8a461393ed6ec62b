// Package cli provides the Cobra command structure for mdlinkify.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkify/internal/logging"
	"github.com/yaklabco/mdlinkify/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions holds global flag values shared by subcommands.
type rootOptions struct {
	debug         bool
	configPath    string
	color         string
	previousChars string
}

// NewRootCommand creates the root mdlinkify command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mdlinkify",
		Short: "Recognize email autolinks in Markdown text",
		Long: `mdlinkify recognizes bare and angle-bracketed email addresses in
Markdown inline text and turns them into mailto links, without disturbing
adjacent markup such as emphasis, explicit links, or raw HTML anchors.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&opts.previousChars, "previous-chars", "",
		"delimiter characters valid immediately before an autolink")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand(opts))
	rootCmd.AddCommand(newRewriteCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// loadConfig merges defaults, the optional config file, and global flag
// overrides.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg := config.NewConfig()

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.previousChars != "" {
		cfg.PreviousChars = opts.previousChars
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	logging.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// readInput reads one input path, with "-" meaning stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
