package config

import (
	"github.com/born-ml/needle/internal/data"
	"github.com/born-ml/needle/internal/tensor"
)

// BuildPipeline turns the configured stages into a data.Compose drawing from src.
func BuildPipeline[T tensor.DType, B tensor.Backend](stages []TransformConfig, src data.Source) (*data.Compose[T, B], error) {
	transforms := make([]data.Transform[T, B], 0, len(stages))
	for _, st := range stages {
		t, err := buildTransform[T, B](st, src)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return data.NewCompose[T, B](transforms...), nil
}

func buildTransform[T tensor.DType, B tensor.Backend](st TransformConfig, src data.Source) (data.Transform[T, B], error) {
	switch st.Type {
	case TransformFlip:
		p := data.DefaultFlipProbability
		if st.P != nil {
			p = *st.P
		}
		flip, err := data.NewRandomFlipHorizontal[T, B](p, src)
		if err != nil {
			return nil, err
		}
		return flip, nil
	default: // TransformCrop; Validate rejects anything else
		padding := data.DefaultCropPadding
		if st.Padding != nil {
			padding = *st.Padding
		}
		crop, err := data.NewRandomCrop[T, B](padding, src)
		if err != nil {
			return nil, err
		}
		return crop, nil
	}
}
