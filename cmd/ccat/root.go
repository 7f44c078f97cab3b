package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adversing/ccat/internal/app"
	"github.com/adversing/ccat/internal/config"
	"github.com/adversing/ccat/internal/logger"
	"github.com/adversing/ccat/internal/tui/pager"
	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

type rootFlags struct {
	theme       string
	syntax      string
	lineNumbers bool
	usePager    bool
	revision    string
	verbose     bool
}

func newRootCmd(highlighter *app.Highlighter, log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ccat [flags] <file>...",
		Short:         "ccat displays source files with syntax highlighting",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runHighlight(cmd, args, flags, highlighter, log)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&flags.theme, "theme", "t", config.DefaultTheme, "Theme to use for highlighting")
	cmd.Flags().StringVarP(&flags.syntax, "syntax", "s", "", "Force a specific syntax (overrides file extension detection)")
	cmd.Flags().BoolVarP(&flags.lineNumbers, "line-numbers", "n", false, "Show line numbers")
	cmd.Flags().BoolVar(&flags.usePager, "pager", false, "View output in a scrollable pager")
	cmd.Flags().StringVar(&flags.revision, "rev", "", "Read the file content from a git revision (e.g. HEAD~1)")

	cmd.AddCommand(newThemesCmd(highlighter))
	cmd.AddCommand(newSyntaxesCmd(highlighter))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *rootFlags, highlighter *app.Highlighter, log *logger.Logger) error {
	if flags.verbose {
		verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err == nil {
			log = verbose
		}
	}

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := validateFileArg(path, flags.revision); err != nil {
			return err
		}

		content, err := loadContent(path, flags.revision)
		if err != nil {
			return err
		}

		log.WithFields(map[string]any{"path": path}).Debug("highlighting file")

		if flags.usePager && term.IsTerminal(int(os.Stdout.Fd())) {
			rendered, err := highlighter.HighlightContent(content, path, *cfg)
			if err != nil {
				return err
			}
			if err := pager.Run(path, rendered); err != nil {
				return newCommandError("page output", path, err, "Try again without --pager.")
			}
			continue
		}

		if err := highlighter.WriteHighlighted(cmd.OutOrStdout(), content, path, *cfg); err != nil {
			return err
		}
	}

	return nil
}

// resolveConfig merges the user-level config file with command-line flags;
// flags win whenever they were set explicitly.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = flags.theme
	}
	if cmd.Flags().Changed("line-numbers") {
		cfg.LineNumbers = flags.lineNumbers
	}
	if flags.syntax != "" {
		cfg.Syntax = flags.syntax
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadContent(path, revision string) (string, error) {
	if revision != "" {
		content, err := readFileAtRevision(path, revision)
		if err != nil {
			return "", newCommandError("read git revision", fmt.Sprintf("%s@%s", path, revision), err, "Check that the file is tracked and the revision exists.")
		}
		return content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ccaterrors.NewReadError(path, err)
	}
	return string(data), nil
}
