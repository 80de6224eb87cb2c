package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleserver"
)

// AppConfig holds process-wide settings read from the environment.
type AppConfig struct {
	Env       string `env:"FORMRULES_ENV" envDefault:"development"`
	LogLevel  string `env:"FORMRULES_LOG_LEVEL"`
	LogFormat string `env:"FORMRULES_LOG_FORMAT"`
}

type rootOptions struct {
	envFiles []string
	verbose  bool
	logger   *slog.Logger
}

// NewRootCmd builds the formrules command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "formrules",
		Short: "Validate form values against declarative rulesets",
		Long: `formrules loads rulesets written in YAML or JSON, where every field maps to a
pipe-separated rule expression such as "required|between:18,130", and validates
submitted values against them from the command line or over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(opts.envFiles...); err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = log
			log.Debug("command started", logger.Component(cmd.Name()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env files to load before reading configuration")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newCheckCmd(opts), newServeCmd(opts))
	return cmd
}

func newLogger(w io.Writer, verbose bool) (*slog.Logger, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, "formrules"),
		logger.WithContextExtractors(ruleserver.RequestIDExtractor()),
	}
	if cfg.LogFormat != "" {
		f := logger.Format(strings.ToLower(cfg.LogFormat))
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, fmt.Errorf("FORMRULES_LOG_FORMAT: unsupported format %q", cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("FORMRULES_LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}

	return logger.New(opts...), nil
}
