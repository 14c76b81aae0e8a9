package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/fortuner/internal/export"
	"github.com/harrison/fortuner/internal/query"
)

// exportOptions holds the export command's flag values
type exportOptions struct {
	pattern     string
	insensitive bool
	html        bool
}

// NewExportCommand creates and returns the export subcommand
func NewExportCommand(common *commonOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [SOURCE...]",
		Short: "Export fortunes as Markdown or HTML",
		Long: `Render fortunes as a Markdown document with one section per source,
each fortune in its own code block. With --html the Markdown is converted
to HTML. --pattern limits the export to matching fortunes.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, common, opts, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.pattern, "pattern", "m", "", "only export fortunes matching this regular expression")
	cmd.Flags().BoolVarP(&opts.insensitive, "insensitive", "i", false, "case-insensitive pattern matching")
	cmd.Flags().BoolVar(&opts.html, "html", false, "render HTML instead of Markdown")

	return cmd
}

func runExport(cmd *cobra.Command, common *commonOptions, opts *exportOptions, args []string) error {
	env, err := loadEnvironment(cmd, common)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("insensitive") {
		env.cfg.MergeWithFlags(&opts.insensitive, nil, nil)
	}
	sources, err := env.sources(args)
	if err != nil {
		return err
	}

	collection, err := env.load(sources, true)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("pattern") {
		re, err := query.CompilePattern(opts.pattern, env.cfg.Insensitive)
		if err != nil {
			return err
		}
		collection = query.Filter(collection, re)
	}

	format := export.FormatMarkdown
	if opts.html {
		format = export.FormatHTML
	}
	return export.NewExporter(format).Write(cmd.OutOrStdout(), collection)
}
