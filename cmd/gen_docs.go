package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs <dir>",
	Short:  "Write Markdown reference pages for the autodoc commands",
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	RunE:   runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
}

func runGenDocs(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	root := cmd.Root()
	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return fmt.Errorf("failed to generate command reference: %w", err)
	}
	appConfig(cmd).Logger.Infof("Command reference written to %s", dir)
	return nil
}
