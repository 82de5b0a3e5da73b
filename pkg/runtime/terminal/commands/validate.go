package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	"github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type ValidateCmd struct {
	scenarioPath string
}

func NewValidateCmd() *cobra.Command {
	vc := &ValidateCmd{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario for inconsistencies",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.scenarioPath, "scenario", "", "Path to the scenario file")

	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, args []string) error {
	p, err := plan.LoadScenario(vc.scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	issues := finance.Validate(&p)
	if len(issues) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Scenario %s is consistent.\n", vc.scenarioPath)
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", issue.Field, issue.Message)
	}
	return fmt.Errorf("%d issue(s) found", len(issues))
}
