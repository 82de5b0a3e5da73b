package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type InitCmd struct {
	out string
}

func NewInitCmd() *cobra.Command {
	ic := &InitCmd{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example scenario file to start from",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.out, "out", "scenario.yaml", "Path of the scenario file to write")

	return cmd
}

func (ic *InitCmd) run(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(ic.out); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", ic.out)
	}

	if err := plan.WriteScenario(ic.out, plan.DefaultPlan()); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scenario written to %s\n", ic.out)
	return nil
}
