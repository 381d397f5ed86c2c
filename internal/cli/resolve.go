// internal/cli/resolve.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pydep-tools/pydep"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [key...]",
	Short: "Resolve dependency keys to pip package names",
	Long: `Resolve abstract dependency keys through the rules registry.

Examples:
  pydep resolve python-yaml
  pydep resolve python-yaml python-scientific`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	m := pydep.NewManager(config)

	for _, key := range args {
		pkgs, err := m.Resolve(key)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", key, strings.Join(pkgs, " "))
	}
	return nil
}
