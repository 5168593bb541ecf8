package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/getlawrence/autodoc/internal/autodoc"
	"github.com/getlawrence/autodoc/internal/config"
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/sitebuild"
	"github.com/getlawrence/autodoc/internal/ui"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <package> [path]",
	Short: "Write mkdocstrings stubs and navigation for a Python package",
	Long: `Generate scans the package sources found under the project path (or the
current directory) and writes:
- one Markdown stub per top-level function and class below docs/
- a navigation section appended after "- Home: index.md" in mkdocs.yml
- mkdocs.yml and docs/index.md themselves when they do not exist yet

Example usage:
  autodoc generate mypkg                         # Package in ./mypkg
  autodoc generate mypkg ~/src/project -l src    # Package in ~/src/project/src/mypkg
  autodoc generate mypkg -u jdoe -p gitlab:example.org -g lab/tools
  autodoc generate mypkg --build                 # Also run mkdocs build`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("layout", "l", "", "Package layout: flat or src (default from config, flat)")
	generateCmd.Flags().StringP("username", "u", "", "Repository owner, used for the site and repository URLs")
	generateCmd.Flags().StringP("platform", "p", "", "Hosting platform: github or gitlab[:domain] (default from config, github)")
	generateCmd.Flags().StringP("groups", "g", "", "GitLab group and subgroups separated by '/'")
	generateCmd.Flags().BoolP("build", "b", false, "Run the site build once the stubs are written")
	generateCmd.Flags().Bool("prune", false, "Remove generated stubs of symbols that no longer exist")
	generateCmd.Flags().String("config", "", "Path to an autodoc configuration file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	app := appConfig(cmd)
	log := app.Logger

	packageName := args[0]
	projectPath, err := projectPathArg(args, log)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	layout, _ := cmd.Flags().GetString("layout")
	username, _ := cmd.Flags().GetString("username")
	platform, _ := cmd.Flags().GetString("platform")
	groups, _ := cmd.Flags().GetString("groups")
	build, _ := cmd.Flags().GetBool("build")
	prune, _ := cmd.Flags().GetBool("prune")

	commander := app.Commander
	if real, ok := commander.(*sitebuild.Real); ok && len(cfg.BuildEnv) > 0 {
		commander = sitebuild.NewReal(append(append([]string{}, real.Env...), cfg.BuildEnv...)...)
	}

	generator, err := autodoc.NewGenerator(cfg, commander, log)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose && logger.IsInteractive() {
		generator.WithStepRunner(ui.RunSpinner)
	}

	res, err := generator.Run(cmd.Context(), autodoc.Options{
		PackageName: packageName,
		ProjectPath: projectPath,
		Layout:      layout,
		Username:    username,
		Platform:    platform,
		Groups:      groups,
		Build:       build,
		Prune:       prune,
	})
	if err != nil {
		return err
	}

	log.Infof("Documented %d symbols from %d files of %s", res.Stubs, len(res.SourceFiles), packageName)
	return nil
}

// projectPathArg resolves the optional project path argument to an absolute path
func projectPathArg(args []string, log logger.Logger) (string, error) {
	target := "."
	if len(args) > 1 {
		target = args[1]
	} else {
		log.Warnf("No project path was supplied. The current directory is used")
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, statErr := os.Stat(absPath); os.IsNotExist(statErr) {
		return "", fmt.Errorf("path does not exist: %s", absPath)
	}
	return absPath, nil
}
