package cmd

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/harrison/fortuner/internal/display"
	"github.com/harrison/fortuner/internal/history"
	"github.com/harrison/fortuner/internal/query"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// errNoSources is returned when neither arguments nor config name a source.
var errNoSources = errors.New("requires at least 1 source (pass SOURCE arguments or set sources in config)")

// fortuneOptions holds the root command's flag values
type fortuneOptions struct {
	common      commonOptions
	pattern     string
	insensitive bool
	seed        uint64
	record      bool
}

// NewRootCommand creates and returns the root cobra command for fortuner
func NewRootCommand() *cobra.Command {
	opts := &fortuneOptions{}

	cmd := &cobra.Command{
		Use:   "fortuner [SOURCE...]",
		Short: "Print a random fortune, or every fortune matching a pattern",
		Long: `Fortuner reads fortune files, where each fortune ends with a line
containing only "%", and prints one chosen at random.

Sources may be files or directories; directories are searched recursively
and compiled index files (.dat) inside them are skipped. Use "-" to read
fortunes from standard input.

With --pattern, every fortune matching the regular expression is printed
instead, each run of matches preceded by the name of its source file.`,
		Example: `  fortuner ./fortunes
  fortuner -m 'Yogi Berra' ./fortunes
  fortuner -i -m 'dog' ./fortunes/jokes ./fortunes/quotes
  fortuner -s 1 ./fortunes`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFortune(cmd, opts, args)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	opts.common.register(cmd)
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "m", "", "print all fortunes matching this regular expression")
	cmd.Flags().BoolVarP(&opts.insensitive, "insensitive", "i", false, "case-insensitive pattern matching")
	cmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "random seed for a reproducible pick")
	cmd.Flags().BoolVar(&opts.record, "record", false, "record the served fortune in the history database")

	cmd.AddCommand(NewIndexCommand(&opts.common))
	cmd.AddCommand(NewExportCommand(&opts.common))
	cmd.AddCommand(NewHistoryCommand(&opts.common))

	return cmd
}

// runFortune loads the collection and dispatches to pattern or random mode.
func runFortune(cmd *cobra.Command, opts *fortuneOptions, args []string) error {
	env, err := loadEnvironment(cmd, &opts.common)
	if err != nil {
		return err
	}

	var insensitive, record *bool
	if cmd.Flags().Changed("insensitive") {
		insensitive = &opts.insensitive
	}
	if cmd.Flags().Changed("record") {
		record = &opts.record
	}
	env.cfg.MergeWithFlags(insensitive, nil, record)

	sources, err := env.sources(args)
	if err != nil {
		return err
	}

	// Compile before touching the filesystem so a bad pattern fails fast
	patternMode := cmd.Flags().Changed("pattern")
	var re *regexp.Regexp
	if patternMode {
		re, err = query.CompilePattern(opts.pattern, env.cfg.Insensitive)
		if err != nil {
			return err
		}
	}

	collection, err := env.load(sources, true)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := display.NewPrinter(out, colorEnabled(out))

	if patternMode {
		env.log.LogDebug(fmt.Sprintf("Filtering %d fortunes with pattern %q", len(collection), re.String()))
		count, err := query.FilterAndReport(printer, collection, re)
		if err != nil {
			return err
		}
		env.log.LogDebug(fmt.Sprintf("%d fortunes matched", count))
		return nil
	}

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		seed = &opts.seed
		env.log.LogDebug(fmt.Sprintf("Picking with seed %d", opts.seed))
	}

	picked, ok, err := query.ReportRandom(printer, collection, query.NewSource(seed))
	if err != nil {
		return err
	}
	if !ok || !env.cfg.History.Enabled {
		return nil
	}

	store, err := history.NewStore(env.historyPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			env.log.LogError(fmt.Sprintf("close history: %v", err))
		}
	}()

	entry := &history.Entry{
		Source: picked.Source,
		Text:   picked.Text,
		Seed:   seed,
	}
	if err := store.Record(cmd.Context(), entry); err != nil {
		return err
	}
	env.log.LogInfo(fmt.Sprintf("Recorded fortune %s from %s", entry.ID, entry.Source))
	return nil
}
