package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strelka-dev/a7p/internal/factory"
	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/schema"
)

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	var params factory.Params
	var table string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a profile document from defaults",
		Long: `Build a complete profile document from factory defaults, optionally
overriding the profile name and the distance table. The result always
passes validation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(rootOpts, params, table, outputPath, cmd)
		},
	}

	cmd.Flags().StringVar(&params.Meta.Name, "name", "", "profile name")
	cmd.Flags().StringVar(&params.Barrel.Caliber, "caliber", "", "cartridge caliber label")
	cmd.Flags().StringVar(&table, "table", "long-range", "distance table: "+strings.Join(tableNames(), ", "))
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path for the generated document")

	return cmd
}

func runNew(opts *RootOptions, params factory.Params, table, outputPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	distances, ok := factory.DistanceTables[table]
	if !ok {
		return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("unknown distance table %q, expected one of: %s", table, strings.Join(tableNames(), ", "))}
	}
	params.Distances = distances

	rec, err := factory.New(params)
	if err != nil {
		return err
	}
	if err := schema.Validate(profile.NewSchema(), rec, false); err != nil {
		return fmt.Errorf("generated document failed validation: %w", err)
	}

	return writeDocument(formatter, rec, outputPath)
}

func tableNames() []string {
	names := make([]string, 0, len(factory.DistanceTables))
	for name := range factory.DistanceTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
