// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydep-tools/pydep"
)

var checkCmd = &cobra.Command{
	Use:   "check [package...]",
	Short: "Check which packages are already installed",
	Long: `Check the given pip packages against the current environment.

Examples:
  pydep check PyYAML
  pydep check numpy scipy requests`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	m := pydep.NewManager(config)

	missing, err := m.Check(args)
	if err != nil {
		return fmt.Errorf("checking packages: %w", err)
	}

	if len(missing) == 0 {
		fmt.Println("All packages installed")
		return nil
	}

	fmt.Println("Missing packages:")
	for _, pkg := range missing {
		fmt.Printf("  %s\n", pkg)
	}
	return nil
}
