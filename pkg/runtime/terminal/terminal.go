package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/runtime/terminal/commands"
	"github.com/venture-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
)

// CLI represents the command-line interface
type CLI struct {
	statements finance.Controller
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Statements finance.Controller
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		statements: opts.Statements,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Business plan projection tool",
	}

	cmd.AddCommand(commands.NewInitCmd())
	cmd.AddCommand(commands.NewStatementCmd(cli.statements, cli.reporter))
	cmd.AddCommand(commands.NewStatementsCmd(cli.statements))
	cmd.AddCommand(commands.NewValidateCmd())
	cmd.AddCommand(commands.NewIndicatorsCmd())
	cmd.AddCommand(commands.NewPdfCmd(cli.statements))

	return cmd
}
