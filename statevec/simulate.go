package statevec

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/entcap/circuit"
	"github.com/oqtopus-team/entcap/core"
)

// Simulate runs p on a fresh |0...0> buffer with one parameter assignment.
// Gates are applied strictly in program order.
func Simulate(p *circuit.Program, params []float64) (*Buffer, error) {
	if p == nil {
		return nil, core.NewConfigurationError("simulate", "program is nil")
	}
	if len(params) != p.ParameterCount() {
		return nil, core.NewConfigurationError("simulate",
			fmt.Sprintf("want %d parameters, got %d", p.ParameterCount(), len(params)))
	}
	b, err := NewBuffer(p.QubitCount())
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.Len(); i++ {
		if err := b.Apply(p.At(i), params); err != nil {
			return nil, errors.Wrapf(err, "gate %d", i)
		}
	}
	if err := b.CheckNormalized(); err != nil {
		return nil, err
	}
	return b, nil
}
