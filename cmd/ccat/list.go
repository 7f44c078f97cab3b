package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/adversing/ccat/internal/app"
	"github.com/adversing/ccat/internal/config"
)

var defaultMarkStyle = lipgloss.NewStyle().Faint(true)

type listOptions struct {
	jsonOutput bool
}

func newThemesCmd(highlighter *app.Highlighter) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := highlighter.Catalog().ThemeNames()
			if opts.jsonOutput {
				return renderNamesJSON(cmd, names)
			}

			for _, name := range names {
				if name == config.DefaultTheme {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, defaultMarkStyle.Render("(default)"))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newSyntaxesCmd(highlighter *app.Highlighter) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "syntaxes",
		Short: "List available syntaxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := highlighter.Catalog().GrammarNames()
			if opts.jsonOutput {
				return renderNamesJSON(cmd, names)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			const columns = 3
			for i := 0; i < len(names); i += columns {
				row := names[i:min(i+columns, len(names))]
				for j, name := range row {
					if j > 0 {
						fmt.Fprint(w, "\t")
					}
					fmt.Fprint(w, name)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderNamesJSON(cmd *cobra.Command, names []string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(names)
}
