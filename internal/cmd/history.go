package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/fortuner/internal/history"
	"github.com/harrison/fortuner/internal/models"
)

// NewHistoryCommand creates and returns the history subcommand
func NewHistoryCommand(common *commonOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently served fortunes",
		Long: `Show fortunes recorded by "fortuner --record" (or with history.enabled
in the config), newest first. Seeded picks show their seed so they can be
served again with --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, common, limit)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of entries to show (0 = all)")

	return cmd
}

func runHistory(cmd *cobra.Command, common *commonOptions, limit int) error {
	if limit < 0 {
		return fmt.Errorf("--limit must be >= 0, got %d", limit)
	}
	env, err := loadEnvironment(cmd, common)
	if err != nil {
		return err
	}

	store, err := history.NewStore(env.historyPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No fortunes served yet")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s (%s)", e.ServedAt.Local().Format("2006-01-02 15:04:05"), e.Source)
		if e.Seed != nil {
			line += fmt.Sprintf(" seed=%d", *e.Seed)
		}
		fmt.Fprintf(out, "%s\n%s\n%s\n", line, e.Text, models.Delimiter)
	}
	return nil
}
