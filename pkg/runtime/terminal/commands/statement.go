package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	"github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type StatementCmd struct {
	scenarioPath  string
	statementType string
	statements    finance.Controller
	reporter      *export.Reporter
}

func NewStatementCmd(statements finance.Controller, reporter *export.Reporter) *cobra.Command {
	sc := &StatementCmd{statements: statements, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Render one financial statement of a scenario",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.scenarioPath, "scenario", "", "Path to the scenario file")
	cmd.Flags().StringVar(&sc.statementType, "statement", "", "Statement type to render (e.g. income)")

	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("statement")

	return cmd
}

func (sc *StatementCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := plan.LoadScenario(sc.scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	supported := sc.statements.GetSupportedStatements()
	valid := false
	for _, s := range supported {
		if s == sc.statementType {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("unsupported statement type %q. Supported types: %v",
			sc.statementType, supported)
	}

	report, err := sc.statements.GenerateStatement(ctx, &p, sc.statementType)
	if err != nil {
		return fmt.Errorf("failed to generate statement: %w", err)
	}

	return sc.reporter.Handle(report)
}

type StatementsCmd struct {
	statements finance.Controller
}

func NewStatementsCmd(statements finance.Controller) *cobra.Command {
	lc := &StatementsCmd{statements: statements}
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "List supported statement types",
		RunE:  lc.run,
	}

	return cmd
}

func (lc *StatementsCmd) run(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Supported statements:\n%s\n",
		strings.Join(lc.statements.GetSupportedStatements(), "\n"))
	return nil
}
