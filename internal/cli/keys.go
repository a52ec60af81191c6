package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shapecheck/internal/analyze"
	"shapecheck/internal/match"
	"shapecheck/internal/report"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <package> <Type>",
		Short: "Report the classified key sets of one struct type",
		Long: `Load a Go package, extract the shape of the named struct type and print
its readonly/writable, optional/required and func/non-func key sets plus the
required sub-shape.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runKeys(opts *RootOptions, pkgPath, typeName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	analyzer := analyze.NewAnalyzer()
	set, err := analyzer.LoadPackages(pkgPath)
	if err != nil {
		return err
	}

	formatter.VerboseLog("loaded %d package(s)", len(set.Packages))
	logDiagnostics(formatter, analyzer.Diagnostics())

	// The load pattern may be relative ("./catalog") while shapes are keyed
	// by import path, so fall back to a name search.
	s, err := set.GetShape(pkgPath, typeName)
	if err != nil {
		s, err = set.FindShape(typeName)
	}
	if err != nil {
		var names []string
		for id := range set.Shapes {
			names = append(names, id.Name)
		}

		if hint, ok := match.Closest(typeName, names); ok {
			return fmt.Errorf("%w (did you mean %s?)", err, hint)
		}

		return err
	}

	r := report.ForShape(s)
	return formatter.Emit(r.Text(), r)
}
