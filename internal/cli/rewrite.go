package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkify/internal/logging"
	"github.com/yaklabco/mdlinkify/pkg/render"
	"github.com/yaklabco/mdlinkify/pkg/scan"
)

func newRewriteCommand(opts *rootOptions) *cobra.Command {
	var expand bool

	cmd := &cobra.Command{
		Use:   "rewrite [files...]",
		Short: "Re-emit Markdown with autolinks rendered per the expand setting",
		Long: `Parse Markdown files, recognize email autolinks, and write the text
back to standard output. With --expand-autolinks, recognized addresses
are emitted as explicit [text](mailto:...) links; without it they are
emitted as their raw mailto URL text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expandChanged := cmd.Flags().Changed("expand-autolinks")
			return runRewrite(opts, args, expand, expandChanged)
		},
	}

	cmd.Flags().BoolVar(&expand, "expand-autolinks", false,
		"render autolinks as explicit markup instead of raw URL text")

	return cmd
}

func runRewrite(opts *rootOptions, args []string, expand, expandChanged bool) error {
	logger := logging.Default()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	renderOpts := render.Options{ExpandAutoLinks: cfg.ExpandAutolinks}
	if expandChanged {
		renderOpts.ExpandAutoLinks = expand
	}

	logger.Debug("rewrite options",
		logging.FieldExpandAutolinks, renderOpts.ExpandAutoLinks,
		logging.FieldPreviousChars, cfg.PreviousChars,
	)

	pipeline := scan.NewPipeline(cfg.PreviousChars)

	for _, path := range args {
		content, err := readInput(path)
		if err != nil {
			return err
		}

		logger.Debug("rewriting file", logging.FieldPath, path)
		tree := scan.Tree(pipeline, content)
		if _, err := fmt.Fprint(os.Stdout, render.Inline(tree, renderOpts)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
