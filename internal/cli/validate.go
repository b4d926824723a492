package cli

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/schema"
)

// FileReport holds the validation outcome for one document.
type FileReport struct {
	File       string   `json:"file"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var failFast bool
	var workers int

	cmd := &cobra.Command{
		Use:   "validate <file-or-dir>",
		Short: "Validate profile documents against the field contract",
		Long: `Validate one profile document, or every document under a directory,
against the profile schema. Collects all violations per file unless
--fail-fast stops at the first one.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], failFast, workers, cmd)
		},
	}

	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first violation per file")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of files processed concurrently")

	return cmd
}

func runValidate(opts *RootOptions, target string, failFast bool, workers int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	files, err := collectFiles(target)
	if err != nil {
		return err
	}

	sch := profile.NewSchema()
	reports := validateFiles(sch, files, failFast, workers, formatter)

	failed := 0
	for _, r := range reports {
		if !r.Valid {
			failed++
		}
	}

	if opts.Format == "json" {
		var outErr error
		if failed > 0 {
			outErr = formatter.Failure(fmt.Sprintf("%d of %d file(s) invalid", failed, len(reports)), reports)
		} else {
			outErr = formatter.Success(reports)
		}
		if outErr != nil {
			return outErr
		}
	} else {
		for _, r := range reports {
			if r.Valid {
				fmt.Fprintf(formatter.Writer, "OK      %s\n", r.File)
				continue
			}
			fmt.Fprintf(formatter.Writer, "INVALID %s\n", r.File)
			for _, v := range r.Violations {
				fmt.Fprintf(formatter.Writer, "  %s\n", v)
			}
		}
		fmt.Fprintf(formatter.Writer, "%d file(s), %d invalid\n", len(reports), failed)
	}

	if failed > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d of %d file(s) invalid", failed, len(reports))}
	}
	return nil
}

// validateFiles runs the schema over every file through a fixed-size worker
// pool. The schema is immutable and shared; each record is owned by exactly
// one worker for the duration of its validation.
func validateFiles(sch schema.Schema, files []string, failFast bool, workers int, formatter *OutputFormatter) []FileReport {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var reports []FileReport
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				report := validateOne(sch, file, failFast)
				mu.Lock()
				reports = append(reports, report)
				mu.Unlock()
			}
		}()
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	sort.Slice(reports, func(i, j int) bool { return reports[i].File < reports[j].File })
	for _, r := range reports {
		formatter.Verbosef("validated %s: valid=%t", r.File, r.Valid)
	}
	return reports
}

func validateOne(sch schema.Schema, file string, failFast bool) FileReport {
	report := FileReport{File: file, Valid: true}

	rec, err := loadRecord(file)
	if err != nil {
		report.Valid = false
		report.Violations = []string{err.Error()}
		return report
	}

	if err := schema.Validate(sch, rec, failFast); err != nil {
		report.Valid = false
		var viol *schema.Violation
		if ok := asViolation(err, &viol); ok {
			for _, leaf := range viol.Leaves() {
				report.Violations = append(report.Violations, leaf.Error())
			}
		} else {
			report.Violations = []string{err.Error()}
		}
	}
	return report
}

// asViolation unwraps a validation error into its violation tree.
func asViolation(err error, target **schema.Violation) bool {
	v, ok := err.(*schema.Violation)
	if ok {
		*target = v
	}
	return ok
}
