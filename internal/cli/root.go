// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pydep-tools/pydep/pkg/core"
)

var (
	cfgFile       string
	pythonVersion string
	debug         bool
	config        *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pydep",
	Short: "Python dependency installer",
	Long: `pydep - Python dependency installer

Detects and installs Python packages through pip, honoring the
externally-managed environment restriction of modern interpreters.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pydep/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&pythonVersion, "python-version", "", "Python major version to target (e.g. 3)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if pythonVersion != "" {
		config.PythonVersion = pythonVersion
	}
	if debug {
		config.Debug = true
	}
}
