package cli

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/needle/internal/backend/cpu"
	"github.com/born-ml/needle/internal/config"
	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/nn"
	"github.com/born-ml/needle/internal/tensor"
)

// weightSummary describes one sampled weight matrix.
type weightSummary struct {
	Name   string
	Scheme string
	DType  string
	Shape  tensor.Shape
	Min    float64
	Max    float64
	Mean   float64
	Std    float64
}

// augmentSummary describes one pass of the pipeline over the synthetic image.
type augmentSummary struct {
	Run    int
	Shape  tensor.Shape
	Zeroed int // pixels filled from the crop padding
}

// initWeights samples the matrix described by spec and summarizes it.
func initWeights(rng *tensor.Generator, spec config.InitConfig) (weightSummary, *tensor.RawTensor, error) {
	dtype, ok := tensor.ParseDataType(spec.DType)
	if !ok {
		return weightSummary{}, nil, errs.New(errs.ErrCodeUnsupported, "unknown dtype %q", spec.DType)
	}

	var values []float64
	var raw *tensor.RawTensor
	switch dtype {
	case tensor.Float32:
		w, err := sampleWeights[float32](rng, spec)
		if err != nil {
			return weightSummary{}, nil, err
		}
		values = make([]float64, w.NumElements())
		for i, v := range w.Data() {
			values[i] = float64(v)
		}
		raw = w.Raw()
	case tensor.Float64:
		w, err := sampleWeights[float64](rng, spec)
		if err != nil {
			return weightSummary{}, nil, err
		}
		values = w.Data()
		raw = w.Raw()
	default:
		return weightSummary{}, nil, errs.New(errs.ErrCodeUnsupported, "initializers fill float32 or float64, not %s", dtype)
	}

	mean, std := stat.MeanStdDev(values, nil)
	return weightSummary{
		Name:   spec.Name,
		Scheme: spec.Scheme,
		DType:  dtype.String(),
		Shape:  raw.Shape(),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   mean,
		Std:    std,
	}, raw, nil
}

func sampleWeights[T tensor.Float](rng *tensor.Generator, spec config.InitConfig) (*tensor.Tensor[T, *cpu.CPUBackend], error) {
	initFn, err := nn.Lookup[T, *cpu.CPUBackend](spec.Scheme)
	if err != nil {
		return nil, err
	}
	return initFn(rng, spec.FanIn, spec.FanOut, cpu.New(), spec.NNConfig())
}

// rampImage builds an (h, w, c) image with strictly positive pixels, so any
// zero in an augmented copy came from padding.
func rampImage(h, w, c int) (*tensor.Tensor[float32, *cpu.CPUBackend], error) {
	px := make([]float32, h*w*c)
	for i := range px {
		px[i] = float32(i + 1)
	}
	return tensor.FromSlice(px, tensor.Shape{h, w, c}, cpu.New())
}

// augment runs the configured pipeline runs times over a ramp image.
func augment(rng *tensor.Generator, cfg config.AugmentConfig) ([]augmentSummary, error) {
	pipeline, err := config.BuildPipeline[float32, *cpu.CPUBackend](cfg.Transforms, rng)
	if err != nil {
		return nil, err
	}
	img, err := rampImage(cfg.Height, cfg.Width, cfg.Channels)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "synthetic image")
	}

	out := make([]augmentSummary, 0, cfg.Runs)
	for run := 0; run < cfg.Runs; run++ {
		res, err := pipeline.Apply(img)
		if err != nil {
			return nil, err
		}
		zeroed := 0
		for _, v := range res.Data() {
			if v == 0 {
				zeroed++
			}
		}
		out = append(out, augmentSummary{Run: run, Shape: res.Shape(), Zeroed: zeroed})
	}
	return out, nil
}
