package cli

import (
	"github.com/spf13/cobra"

	"shapecheck/internal/report"
	"shapecheck/literal"
)

// NewLiteralCommand creates the literal command.
func NewLiteralCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "literal <spelling>...",
		Short: "Classify numeric literal spellings",
		Long: `Classify one or more numeric literal spellings lexically: integrality from
the absence of a fractional separator, sign from the presence of a leading "-".
Spellings outside the literal grammar are rejected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLiteral(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runLiteral(opts *RootOptions, spellings []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	nums := make([]literal.Number, 0, len(spellings))
	for _, text := range spellings {
		// Reject the whole batch on the first malformed spelling; no
		// partial result.
		n, err := literal.Parse(text)
		if err != nil {
			return err
		}

		nums = append(nums, n)
	}

	rows := report.ForNumbers(nums)
	return formatter.Emit(report.LiteralText(rows), rows)
}
