// Command fxprint renders binary fixed point values from program snapshots.
//
// Usage:
//
//	fxprint match 'elastic_integer<23, power<-12, 2>>'
//	fxprint decode --exponent -12 4096
//	fxprint render snapshot.yaml
//	fxprint browse snapshot.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/fxprint"
	"github.com/calebcase/fxprint/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	format     string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fxprint",
	Short: "Render binary fixed point values",
	Long: `fxprint recognizes fixed point types (the CNL elastic_integer and
scaled_integer families) by name, follows their representation chain to the
stored integer and prints the scaled decimal value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "render format: exact or float (overrides the configuration)")

	rootCmd.AddCommand(matchCmd, decodeCmd, renderCmd, browseCmd)
}

// loadConfig returns the configuration selected by the global flags.
func loadConfig() (*config.Config, error) {
	c := config.Default()
	if configPath != "" {
		var err error
		c, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	if format != "" {
		c.Format = format
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// loadRegistry builds the registry once for the command.
func loadRegistry() (*fxprint.Registry, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return c.Registry(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
