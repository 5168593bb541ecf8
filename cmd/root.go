package cmd

import (
	"context"

	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/spf13/cobra"
)

type contextKey string

// Context key for configuration
const ConfigKey contextKey = "config"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "autodoc",
	Short: "Generate mkdocstrings reference pages for a Python package",
	Long: `autodoc scans a Python package for top-level functions and classes and
writes one mkdocstrings stub per symbol, together with the matching navigation
section of the mkdocs configuration.

Symbols whose docstring contains <EXCLUDE_CALLABLE_FROM_MKDOCSTRINGS> are left
out, as are modules whose docstring contains <EXCLUDE_MODULE_FROM_MKDOCSTRINGS>.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return ExecuteContext(context.Background(), NewAppConfig(nil))
}

// ExecuteContext runs the root command with config stored in ctx.
// A nil config logger is replaced by a stdout logger once flags are parsed.
func ExecuteContext(ctx context.Context, config *AppConfig) error {
	ctx = context.WithValue(ctx, ConfigKey, config)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	config := appConfig(cmd)
	if config.Logger == nil {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config.Logger = logger.NewStdoutLogger(verbose)
	}
	return nil
}

// appConfig returns the configuration stored in the command context
func appConfig(cmd *cobra.Command) *AppConfig {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if config, ok := ctx.Value(ConfigKey).(*AppConfig); ok && config != nil {
		return config
	}
	config := NewAppConfig(nil)
	cmd.SetContext(context.WithValue(ctx, ConfigKey, config))
	return config
}
