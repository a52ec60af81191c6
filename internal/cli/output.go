package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles JSON vs text output for CLI commands. Verbose notes
// go to ErrWriter so JSON output stays parseable.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}

// Emit writes either the text rendering or the JSON payload, depending on the
// selected format.
func (f *OutputFormatter) Emit(text string, payload any) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	_, err := io.WriteString(f.Writer, text)
	return err
}

// VerboseLog writes a note to the error stream when verbose output is on.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}

	fmt.Fprintf(f.ErrWriter, format+"\n", args...)
}
