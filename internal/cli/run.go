package cli

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/needle/internal/config"
)

func newRunCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run augmentation and initialization from a TOML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("loaded config", "path", path, "seed", cfg.Seed, "stages", len(cfg.Augment.Transforms), "weights", len(cfg.Init))

			if len(cfg.Augment.Transforms) > 0 {
				if err := runAugment(cmd, cfg); err != nil {
					return err
				}
			}
			return runInits(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "needle.toml", "path to the run description")
	return cmd
}
