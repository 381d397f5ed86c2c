// internal/cli/install.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pydep-tools/pydep"
)

var (
	installQuiet     bool
	installReinstall bool
	installSimulate  bool
	installKeys      bool
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more pip packages",
	Long: `Install packages through pip, skipping those already present.

Examples:
  pydep install PyYAML
  pydep install numpy scipy --quiet
  pydep install requests --reinstall
  pydep install python-yaml --keys`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installQuiet, "quiet", "q", false, "reduce pip output")
	installCmd.Flags().BoolVar(&installReinstall, "reinstall", false, "force reinstallation")
	installCmd.Flags().BoolVar(&installSimulate, "simulate", false, "print the install commands without running them")
	installCmd.Flags().BoolVar(&installKeys, "keys", false, "resolve arguments as dependency keys through the rules registry")
}

func runInstall(cmd *cobra.Command, args []string) error {
	m := pydep.NewManager(config)

	pkgs := args
	if installKeys {
		pkgs = nil
		for _, key := range args {
			resolved, err := m.Resolve(key)
			if err != nil {
				return err
			}
			pkgs = append(pkgs, resolved...)
		}
	}

	opts := pydep.Options{
		Interactive: !installSimulate,
		Reinstall:   installReinstall,
		Quiet:       installQuiet,
	}

	if installSimulate {
		cmds, err := m.InstallCommands(pkgs, opts)
		if err != nil {
			return err
		}
		for _, c := range cmds {
			fmt.Println(strings.Join(c, " "))
		}
		return nil
	}

	if err := m.Install(pkgs, opts); err != nil {
		return err
	}

	fmt.Printf("✓ Installed %d package(s)\n", len(pkgs))
	return nil
}
