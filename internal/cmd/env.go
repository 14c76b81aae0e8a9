package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/fortuner/internal/config"
	"github.com/harrison/fortuner/internal/fileutil"
	"github.com/harrison/fortuner/internal/logger"
	"github.com/harrison/fortuner/internal/models"
	"github.com/harrison/fortuner/internal/parser"
	"github.com/harrison/fortuner/internal/strfile"
)

// commonOptions are flags shared by every command
type commonOptions struct {
	configPath string
	logLevel   string
}

// register adds the shared flags as persistent flags on the root command.
func (o *commonOptions) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "config file (default $FORTUNER_HOME/config.yaml or ~/.fortuner/config.yaml)")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// environment is the loaded configuration and logger for one invocation
type environment struct {
	cfg   *config.Config
	log   *logger.ConsoleLogger
	home  string
	stdin io.Reader
}

// loadEnvironment reads the config file, applies --log-level and validates the result.
func loadEnvironment(cmd *cobra.Command, opts *commonOptions) (*environment, error) {
	home, err := config.GetFortunerHome()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if opts.configPath != "" {
		cfg, err = config.LoadConfig(opts.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(home)
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.MergeWithFlags(nil, &opts.logLevel, nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &environment{
		cfg:   cfg,
		log:   logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
		home:  home,
		stdin: cmd.InOrStdin(),
	}, nil
}

// sources returns the command-line sources, falling back to the configured ones.
func (e *environment) sources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(e.cfg.Sources) > 0 {
		e.log.LogDebug("No sources given, using sources from config")
		return e.cfg.Sources, nil
	}
	return nil, errNoSources
}

// resolve expands sources into files using the configured exclusions.
// Compiled indexes are always excluded, even when the config omits them.
func (e *environment) resolve(sources []string, allowStdin bool) ([]string, error) {
	result, err := fileutil.Resolve(sources, fileutil.ResolveOptions{
		ExcludeExtensions: e.excludeExtensions(),
		AllowStdin:        allowStdin,
	})
	if err != nil {
		return nil, err
	}
	e.log.LogResolved(sources, result.Files, result.Skipped)
	return result.Files, nil
}

// excludeExtensions returns the configured exclusions plus the index extension.
func (e *environment) excludeExtensions() []string {
	for _, ext := range e.cfg.ExcludeExtensions {
		if strings.EqualFold(strings.TrimPrefix(ext, "."), strings.TrimPrefix(strfile.Extension, ".")) {
			return e.cfg.ExcludeExtensions
		}
	}
	e.log.LogWarn(fmt.Sprintf("exclude_extensions does not list %s; compiled indexes are skipped anyway", strfile.Extension))
	exts := make([]string, 0, len(e.cfg.ExcludeExtensions)+1)
	exts = append(exts, e.cfg.ExcludeExtensions...)
	return append(exts, strfile.Extension)
}

// load resolves and parses sources into a collection.
func (e *environment) load(sources []string, allowStdin bool) (models.Collection, error) {
	files, err := e.resolve(sources, allowStdin)
	if err != nil {
		return nil, err
	}
	collection, err := parser.New(e.stdin).Parse(files)
	if err != nil {
		return nil, err
	}
	e.log.LogLoaded(len(collection), len(files))
	return collection, nil
}

// historyPath returns the configured history database path.
func (e *environment) historyPath() string {
	return e.cfg.HistoryPath(e.home)
}

// colorEnabled reports whether w is a terminal that should get colored output.
func colorEnabled(w io.Writer) bool {
	return logger.ColorEnabled(w)
}
