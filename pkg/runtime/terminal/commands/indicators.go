package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	"github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type IndicatorsCmd struct {
	scenarioPath string
}

func NewIndicatorsCmd() *cobra.Command {
	ic := &IndicatorsCmd{}
	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "Compute profitability indicators for a scenario",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.scenarioPath, "scenario", "", "Path to the scenario file")

	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (ic *IndicatorsCmd) run(cmd *cobra.Command, args []string) error {
	p, err := plan.LoadScenario(ic.scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	indicators, err := finance.ComputeIndicators(&p)
	if err != nil {
		return fmt.Errorf("failed to compute indicators: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "NPV:                EUR %.2f\n", indicators.NPV)
	if indicators.IRRConverged {
		fmt.Fprintf(out, "IRR:                %.2f%%\n", indicators.IRR*100)
	} else {
		fmt.Fprintln(out, "IRR:                did not converge")
	}
	if indicators.PaybackMonths >= 0 {
		fmt.Fprintf(out, "Payback:            %d month(s)\n", indicators.PaybackMonths)
	} else {
		fmt.Fprintln(out, "Payback:            never within the plan horizon")
	}
	fmt.Fprintf(out, "Break-even revenue: EUR %.2f per year\n", indicators.BreakEvenRevenue)
	return nil
}
