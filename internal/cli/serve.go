package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleserver"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve every ruleset in a directory over HTTP",
		Long: `Load every .yaml, .yml and .json ruleset in a directory and serve them:

  GET  /rulesets
  POST /rulesets/{name}/validate

The directory defaults to FORMRULES_RULES_DIR; the listener is configured with
the FORMRULES_HTTP_* variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var rsCfg ruleset.Config
			if err := config.Load(&rsCfg); err != nil {
				return err
			}
			if dir == "" {
				dir = rsCfg.Dir
			}

			var srvCfg ruleserver.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}

			log := root.logger.With(logger.Component("serve"))
			sets, err := ruleset.LoadDir(ctx, dir, ruleset.WithLogger(root.logger))
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "rulesets loaded", logger.Count("rulesets", len(sets)))

			reqLog := root.logger.With(logger.Component("http"))
			handler := ruleserver.NewHandler(sets,
				ruleserver.WithHandlerLogger(reqLog),
				ruleserver.WithMaxBodySize(srvCfg.MaxBody),
			)
			return ruleserver.NewFromConfig(srvCfg, ruleserver.WithLogger(log)).Run(ctx, handler)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "rulesets directory (default $FORMRULES_RULES_DIR or ./rules)")
	return cmd
}
