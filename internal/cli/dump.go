package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"shapecheck/internal/analyze"
	"shapecheck/internal/common"
	"shapecheck/internal/report"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dump <package>...",
		Short:         "Dump the raw extracted shape model (debug)",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDump(opts *RootOptions, patterns []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	analyzer := analyze.NewAnalyzer()
	set, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return err
	}

	logDiagnostics(formatter, analyzer.Diagnostics())

	ids := make([]analyze.ShapeID, 0, len(set.Shapes))
	for id := range set.Shapes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for _, id := range ids {
		formatter.VerboseLog("shape %s (package %s)", id.Name, common.PkgAlias(id.PkgPath))
		report.Dump(formatter.Writer, set.Shapes[id])
	}

	if !common.IsEmpty(set.Consts) {
		report.Dump(formatter.Writer, set.Consts)
	}

	return nil
}
