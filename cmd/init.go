package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/getlawrence/autodoc/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default .autodoc.yaml",
	Long: `Init writes the default autodoc configuration to <path>/.autodoc.yaml
(or the current directory) so it can be edited. An existing file is kept
unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	log := appConfig(cmd).Logger

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	configPath := filepath.Join(target, ".autodoc.yaml")

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", configPath)
	}
	if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
		return err
	}
	log.Infof("Configuration written to %s", configPath)
	return nil
}
