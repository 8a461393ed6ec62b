package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkify/internal/logging"
	"github.com/yaklabco/mdlinkify/internal/ui/pretty"
	"github.com/yaklabco/mdlinkify/pkg/scan"
)

func newScanCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Scan Markdown files for email autolinks",
		Long: `Scan Markdown files and report every recognized email autolink with
its source position and the mailto URL it would produce.

Use "-" to read from standard input.

Examples:
  mdlinkify scan README.md            # Scan a single file
  mdlinkify scan docs/*.md            # Scan several files
  cat notes.md | mdlinkify scan -     # Scan stdin
  mdlinkify scan --json README.md     # Machine-readable output`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScan(opts, args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit matches as JSON")

	return cmd
}

func runScan(opts *rootOptions, args []string, asJSON bool) error {
	logger := logging.Default()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	pipeline := scan.NewPipeline(cfg.PreviousChars)
	result := scan.Result{}

	for _, path := range args {
		content, err := readInput(path)
		if err != nil {
			return err
		}

		matches := scan.Content(pipeline, path, content)
		result.FilesScanned++
		result.Matches = append(result.Matches, matches...)

		logger.Debug("scanned file",
			logging.FieldPath, path,
			logging.FieldLinksFound, len(matches),
		)
	}

	logger.Debug("scan complete",
		logging.FieldFiles, result.FilesScanned,
		logging.FieldLinksFound, len(result.Matches),
	)

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.color, os.Stdout))
	fmt.Print(styles.FormatMatches(result))
	fmt.Print(styles.FormatSummary(result))

	return nil
}
