package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/needle/internal/config"
	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/nn"
	"github.com/born-ml/needle/internal/serialization"
	"github.com/born-ml/needle/internal/tensor"
)

func newInitCmd() *cobra.Command {
	spec := config.InitConfig{Name: "weight"}
	var seed uint64
	var out string
	var gain float64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Sample a weight matrix with a named initializer",
		Example: `  needle init --scheme kaiming_uniform --fan-in 784 --fan-out 128
  needle init --scheme xavier_normal --fan-in 6 --fan-out 4 --gain 0.5 --dtype float64
  needle init --scheme kaiming_normal --fan-in 256 --fan-out 10 --name fc.weight --out fc.safetensors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.Seed = seed
			cfg.Output = out
			if cmd.Flags().Changed("gain") {
				spec.Gain = &gain
			}
			cfg.Init = []config.InitConfig{spec}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runInits(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&spec.Scheme, "scheme", nn.NameXavierUniform, "initializer: xavier_uniform, xavier_normal, kaiming_uniform, kaiming_normal")
	cmd.Flags().IntVar(&spec.FanIn, "fan-in", 0, "input units")
	cmd.Flags().IntVar(&spec.FanOut, "fan-out", 0, "output units")
	cmd.Flags().StringVar(&spec.DType, "dtype", tensor.Float32.String(), "element type: float32 or float64")
	cmd.Flags().Float64Var(&gain, "gain", 1, "Xavier gain")
	cmd.Flags().StringVar(&spec.Nonlinearity, "nonlinearity", "", "Kaiming nonlinearity (default relu)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&spec.Name, "name", spec.Name, "tensor name used in the output file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the weights to this SafeTensors file")
	_ = cmd.MarkFlagRequired("fan-in")
	_ = cmd.MarkFlagRequired("fan-out")

	return cmd
}

// runInits samples every configured weight matrix from one generator and,
// when cfg.Output is set, saves them together.
func runInits(cmd *cobra.Command, cfg *config.Config) error {
	logger := loggerFromContext(cmd.Context())
	rng := tensor.NewGenerator(cfg.Seed)
	prog := newProgress(logger)

	weights := make(serialization.StateDict, len(cfg.Init))
	for _, spec := range cfg.Init {
		logger.Debug("initializing", "name", spec.Name, "scheme", spec.Scheme, "fan_in", spec.FanIn, "fan_out", spec.FanOut, "seed", rng.Seed())
		s, raw, err := initWeights(rng, spec)
		if err != nil {
			return err
		}
		weights[spec.Name] = raw
		logger.Info("initialized",
			"name", s.Name, "scheme", s.Scheme, "dtype", s.DType, "shape", s.Shape,
			"min", s.Min, "max", s.Max, "mean", s.Mean, "std", s.Std)
	}

	if cfg.Output != "" {
		meta := map[string]string{
			"seed": strconv.FormatUint(cfg.Seed, 10),
		}
		if err := serialization.WriteFile(cfg.Output, weights, meta); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "save weights")
		}
		logger.Info("saved weights", "path", cfg.Output, "tensors", len(weights))
	}
	prog.done("initialization finished")
	return nil
}
