package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/export"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	"github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type PdfCmd struct {
	scenarioPath string
	out          string
	statements   finance.Controller
}

func NewPdfCmd(statements finance.Controller) *cobra.Command {
	pc := &PdfCmd{statements: statements}
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export every statement of a scenario as a PDF",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.scenarioPath, "scenario", "", "Path to the scenario file")
	cmd.Flags().StringVar(&pc.out, "out", "plan.pdf", "Path of the PDF to write")

	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (pc *PdfCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	p, err := plan.LoadScenario(pc.scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	var reports []*domain.Report
	for _, statementType := range pc.statements.GetSupportedStatements() {
		report, err := pc.statements.GenerateStatement(ctx, &p, statementType)
		if err != nil {
			logger.Warn().Err(err).Str("statement", statementType).Msg("skipping statement")
			continue
		}
		reports = append(reports, report)
	}
	if len(reports) == 0 {
		return fmt.Errorf("no statement could be generated for %s", pc.scenarioPath)
	}

	file, err := os.Create(pc.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", pc.out, err)
	}
	defer file.Close()

	if err := export.WritePlanPDF(file, &p, reports); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pc.out)
	return nil
}
