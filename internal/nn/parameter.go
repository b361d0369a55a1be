package nn

import (
	"github.com/born-ml/needle/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters take ownership of an initialized tensor and mark it as requiring
// gradients. They typically represent weights and biases of layers.
//
// Example:
//
//	w, err := nn.KaimingUniform[float32](rng, 784, 128, backend, nn.Config{})
//	if err != nil {
//	    return err
//	}
//	weight := nn.NewParameter("linear1.weight", w)
type Parameter[T tensor.Float, B tensor.Backend] struct {
	name   string               // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[T, B] // The parameter tensor
}

// NewParameter creates a new trainable parameter.
//
// The tensor should be initialized before creating the Parameter; it is
// marked with RequireGrad.
func NewParameter[T tensor.Float, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return &Parameter[T, B]{
		name:   name,
		tensor: t.RequireGrad(),
	}
}

// Name returns the parameter name.
func (p *Parameter[T, B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[T, B]) Tensor() *tensor.Tensor[T, B] {
	return p.tensor
}

// Shape returns the parameter tensor's shape.
func (p *Parameter[T, B]) Shape() tensor.Shape {
	return p.tensor.Shape()
}
