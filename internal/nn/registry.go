package nn

import (
	"strings"

	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/tensor"
)

// InitFunc is the common signature of every initializer in this package.
type InitFunc[T tensor.Float, B tensor.Backend] func(rng *tensor.Generator, fanIn, fanOut int, backend B, cfg Config) (*tensor.Tensor[T, B], error)

// Registered initializer names.
const (
	NameXavierUniform  = "xavier_uniform"
	NameXavierNormal   = "xavier_normal"
	NameKaimingUniform = "kaiming_uniform"
	NameKaimingNormal  = "kaiming_normal"
)

// Names returns the registered initializer names in a stable order.
func Names() []string {
	return []string{NameXavierUniform, NameXavierNormal, NameKaimingUniform, NameKaimingNormal}
}

// IsRegistered reports whether name resolves to an initializer.
func IsRegistered(name string) bool {
	key := normalizeName(name)
	for _, n := range Names() {
		if n == key {
			return true
		}
	}
	return false
}

// UsesGain reports whether the named initializer reads Config.Gain.
// Only the Xavier schemes do.
func UsesGain(name string) bool {
	switch normalizeName(name) {
	case NameXavierUniform, NameXavierNormal:
		return true
	}
	return false
}

// UsesNonlinearity reports whether the named initializer reads
// Config.Nonlinearity. Only the Kaiming schemes do.
func UsesNonlinearity(name string) bool {
	switch normalizeName(name) {
	case NameKaimingUniform, NameKaimingNormal:
		return true
	}
	return false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the initializer registered under name.
// Matching is case-insensitive; unknown names fail with ErrCodeUnsupported.
//
// Example:
//
//	initFn, err := nn.Lookup[float32, *cpu.CPUBackend]("kaiming_normal")
//	w, err := initFn(rng, 784, 128, backend, nn.Config{})
func Lookup[T tensor.Float, B tensor.Backend](name string) (InitFunc[T, B], error) {
	switch normalizeName(name) {
	case NameXavierUniform:
		return XavierUniform[T, B], nil
	case NameXavierNormal:
		return XavierNormal[T, B], nil
	case NameKaimingUniform:
		return KaimingUniform[T, B], nil
	case NameKaimingNormal:
		return KaimingNormal[T, B], nil
	default:
		return nil, errs.New(errs.ErrCodeUnsupported, "unknown initializer %q (known: %s)", name, strings.Join(Names(), ", "))
	}
}
