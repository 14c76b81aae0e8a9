package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/fortuner/internal/display"
	"github.com/harrison/fortuner/internal/models"
	"github.com/harrison/fortuner/internal/strfile"
)

// NewIndexCommand creates and returns the index subcommand
func NewIndexCommand(common *commonOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [SOURCE...]",
		Short: "Build compiled .dat indexes next to fortune files",
		Long: `Scan fortune files and write a strfile-style index for each one as
<file>.dat. Existing .dat files inside directories are skipped, so indexing
a directory twice rewrites the same indexes.

Text after the last "%" line is not indexed; a warning lists affected files.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, common, args)
		},
		SilenceUsage: true,
	}

	return cmd
}

func runIndex(cmd *cobra.Command, common *commonOptions, args []string) error {
	env, err := loadEnvironment(cmd, common)
	if err != nil {
		return err
	}
	sources, err := env.sources(args)
	if err != nil {
		return err
	}
	for _, src := range sources {
		if src == models.StdinSource {
			return fmt.Errorf("cannot index standard input")
		}
	}

	files, err := env.resolve(sources, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	useColor := colorEnabled(out)
	progress := display.NewProgressIndicator(out, len(files), useColor)
	progress.Start()

	var unterminated []string
	for _, file := range files {
		ix, scan, err := strfile.BuildFile(file)
		if err != nil {
			return err
		}
		if err := strfile.WriteFile(file, ix); err != nil {
			return err
		}
		env.log.LogDebug(fmt.Sprintf("Wrote %s (%d fortunes, longest %d bytes)", strfile.IndexPath(file), ix.NumStr, ix.LongLen))
		if scan.Dangling {
			unterminated = append(unterminated, file)
		}
		progress.Step(file, int(ix.NumStr))
	}
	progress.Complete()

	if len(unterminated) > 0 {
		display.WarnUnterminated(unterminated).Display(cmd.ErrOrStderr(), colorEnabled(cmd.ErrOrStderr()))
	}
	return nil
}
