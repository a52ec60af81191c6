package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"shapecheck/internal/diagnostic"
	"shapecheck/internal/manifest"
	"shapecheck/internal/report"
)

// NewManifestCommand creates the manifest command.
func NewManifestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest <file.yaml>",
		Short: "Validate a YAML shape manifest and report its key sets",
		Long: `Parse a YAML shape manifest, resolve every declared shape, and print the
classified key sets for each. Malformed entries are reported as diagnostics
and fail the command; no partial shape is reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runManifest(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	mf, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}

	formatter.VerboseLog("manifest version %s, %d shape(s)", mf.Version, len(mf.Shapes))

	set, diags := manifest.Build(mf)
	logDiagnostics(formatter, diags)
	if err := diags.Error(); err != nil {
		return err
	}

	var texts []string
	var reports []report.KeySets
	for _, name := range set.Names() {
		s, err := set.Get(name)
		if err != nil {
			return err
		}

		r := report.ForShape(s)
		texts = append(texts, r.Text())
		reports = append(reports, r)
	}

	return formatter.Emit(strings.Join(texts, "\n"), reports)
}

// logDiagnostics routes non-fatal notes to the verbose stream.
func logDiagnostics(formatter *OutputFormatter, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		formatter.VerboseLog("warning: %s", d.String())
	}

	for _, d := range diags.Infos {
		formatter.VerboseLog("note: %s", d.String())
	}
}
