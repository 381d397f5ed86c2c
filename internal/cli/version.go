// internal/cli/version.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pydep-tools/pydep"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pydep version 0.1.0")

		m := pydep.NewManager(config)
		strs, err := m.VersionStrings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "pip toolchain: %v\n", err)
			return
		}
		for _, s := range strs {
			fmt.Println(s)
		}
	},
}
