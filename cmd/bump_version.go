package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/getlawrence/autodoc/internal/versionbump"
	"github.com/spf13/cobra"
)

var bumpVersionCmd = &cobra.Command{
	Use:   "bump-version <package> [path]",
	Short: "Increment the patch number of __version__ in the package __init__.py",
	Long: `Bump-version rewrites <path>/<package>/__init__.py so that every
__version__ = "X.Y.Z" assignment becomes "X.Y.Z+1".

Example usage:
  autodoc bump-version mypkg             # ./mypkg/__init__.py
  autodoc bump-version mypkg ~/project   # ~/project/mypkg/__init__.py
  autodoc bump-version mypkg --dry-run   # Only print the next version`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBumpVersion,
}

func init() {
	rootCmd.AddCommand(bumpVersionCmd)

	bumpVersionCmd.Flags().Bool("dry-run", false, "Print the next version without rewriting __init__.py")
}

func runBumpVersion(cmd *cobra.Command, args []string) error {
	log := appConfig(cmd).Logger

	projectPath, err := projectPathArg(args, log)
	if err != nil {
		return err
	}
	initPath := filepath.Join(projectPath, args[0], "__init__.py")

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		data, err := os.ReadFile(initPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", initPath, err)
		}
		res, err := versionbump.Next(string(data))
		if err != nil {
			return fmt.Errorf("failed to bump version: %s: %w", initPath, err)
		}
		log.Infof("Version of %s would be bumped from %s to %s", args[0], res.Old, res.New)
		return nil
	}

	res, err := versionbump.Bump(initPath, log)
	if err != nil {
		return fmt.Errorf("failed to bump version: %w", err)
	}
	log.Infof("Version of %s bumped from %s to %s", args[0], res.Old, res.New)
	return nil
}
