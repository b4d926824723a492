package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strelka-dev/a7p/internal/record"
	"github.com/strelka-dev/a7p/internal/recovery"
)

// FixReport is the JSON shape of one recovery attempt: the stable path
// rendering plus the untruncated before/after values.
type FixReport struct {
	Path      string `json:"path"`
	Recovered bool   `json:"recovered"`
	OldValue  any    `json:"old_value,omitempty"`
	NewValue  any    `json:"new_value,omitempty"`
}

// RecoverReport is the JSON shape of a full pipeline run.
type RecoverReport struct {
	Valid      bool        `json:"valid"`
	Fixes      []FixReport `json:"fixes,omitempty"`
	Violations []string    `json:"violations,omitempty"`
}

func newRecoverReport(out recovery.Outcome) RecoverReport {
	report := RecoverReport{Valid: out.Valid}
	for _, r := range out.Results {
		fix := FixReport{Path: r.Path.String(), Recovered: r.Recovered}
		if r.OldValue != nil {
			fix.OldValue = record.ToGo(r.OldValue)
		}
		if r.NewValue != nil {
			fix.NewValue = record.ToGo(r.NewValue)
		}
		report.Fixes = append(report.Fixes, fix)
	}
	for _, v := range out.Violations {
		report.Violations = append(report.Violations, v.Error())
	}
	return report
}

// NewRecoverCommand creates the recover command.
func NewRecoverCommand(rootOpts *RootOptions) *cobra.Command {
	var outputPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "recover <file>",
		Short: "Repair an invalid profile document",
		Long: `Validate a profile document and replace invalid fields with safe
defaults where a fix is registered. Fields without a registered fix are
skipped. The repaired document is written to --output, or printed when
no output path is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecover(rootOpts, args[0], outputPath, force, cmd)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path for the repaired document")
	cmd.Flags().BoolVar(&force, "force", false, "write the document even when violations remain")

	return cmd
}

func runRecover(opts *RootOptions, file, outputPath string, force bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rec, err := loadRecord(file)
	if err != nil {
		return err
	}

	pipeline := recovery.NewPipeline()
	outcome := pipeline.Run(rec)

	if opts.Format == "json" {
		report := newRecoverReport(outcome)
		if outcome.Valid {
			err = formatter.Success(report)
		} else {
			err = formatter.Failure("document still invalid after recovery", report)
		}
		if err != nil {
			return err
		}
	} else {
		for _, r := range outcome.Results {
			fmt.Fprintln(formatter.Writer, r.String())
		}
		fmt.Fprintln(formatter.Writer, outcome.Summary())
	}

	if !outcome.Valid && !force {
		return &ExitError{Code: ExitFailure, Message: "document still invalid after recovery"}
	}

	return writeDocument(formatter, rec, outputPath)
}

func writeDocument(formatter *OutputFormatter, rec record.Object, outputPath string) error {
	data, err := encodeDocument(rec, outputPath)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if outputPath == "" {
		_, err = formatter.Writer.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	formatter.Verbosef("wrote document to %s", outputPath)
	return nil
}
