package circuit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/oqtopus-team/entcap/core"
	"go.uber.org/multierr"
)

// MaxQubits bounds the statevector to 2^24 amplitudes.
const MaxQubits = 24

// Program is an ordered, validated gate sequence over a fixed number of qubits
// and parameter slots. It has no mutators and is safe for concurrent reads.
type Program struct {
	qubitCount     int
	parameterCount int
	ops            []Operation
}

// NewProgram validates every operation against qubits and parameters and reports
// all violations at once.
func NewProgram(qubits, parameters int, ops ...Operation) (*Program, error) {
	var err error
	if qubits < 1 || qubits > MaxQubits {
		err = multierr.Append(err, fmt.Errorf("qubit count %d is outside [1, %d]", qubits, MaxQubits))
	}
	if parameters < 0 {
		err = multierr.Append(err, fmt.Errorf("parameter count %d is negative", parameters))
	}
	for i, op := range ops {
		err = multierr.Append(err, validateOperation(i, op, qubits, parameters))
	}
	if err != nil {
		return nil, core.WrapConfigurationError("circuit", err)
	}
	return &Program{
		qubitCount:     qubits,
		parameterCount: parameters,
		ops:            slices.Clone(ops),
	}, nil
}

func validateOperation(i int, op Operation, qubits, parameters int) error {
	if op == nil {
		return fmt.Errorf("gate %d is nil", i)
	}
	var err error
	k := op.Kind()
	switch o := op.(type) {
	case SingleQubit:
		if k.Controlled() || !k.valid() {
			err = multierr.Append(err, fmt.Errorf("gate %d: %s is not a single-qubit gate", i, k))
		}
	case Controlled:
		if !k.Controlled() {
			err = multierr.Append(err, fmt.Errorf("gate %d: %s is not a controlled gate", i, k))
		}
		if o.Control == o.Target {
			err = multierr.Append(err, fmt.Errorf("gate %d: %s uses wire %d as control and target", i, k, o.Target))
		}
	default:
		return fmt.Errorf("gate %d: unsupported operation %T", i, op)
	}
	for _, w := range op.Wires() {
		if w < 0 || w >= qubits {
			err = multierr.Append(err, fmt.Errorf("gate %d: %s wire %d is outside [0, %d)", i, k, w, qubits))
		}
	}
	p := op.ParamIndex()
	switch {
	case k.Parameterized() && p == NoParam:
		err = multierr.Append(err, fmt.Errorf("gate %d: %s needs a parameter slot", i, k))
	case !k.Parameterized() && p != NoParam:
		err = multierr.Append(err, fmt.Errorf("gate %d: %s takes no parameter, got slot %d", i, k, p))
	case p != NoParam && (p < 0 || p >= parameters):
		err = multierr.Append(err, fmt.Errorf("gate %d: %s parameter slot %d is outside [0, %d)", i, k, p, parameters))
	}
	return err
}

func (p *Program) QubitCount() int     { return p.qubitCount }
func (p *Program) ParameterCount() int { return p.parameterCount }
func (p *Program) Len() int            { return len(p.ops) }
func (p *Program) At(i int) Operation  { return p.ops[i] }

// Operations returns a copy of the gate sequence in program order.
func (p *Program) Operations() []Operation {
	return slices.Clone(p.ops)
}

// Entangling reports whether the program contains any two-qubit gate.
func (p *Program) Entangling() bool {
	for _, op := range p.ops {
		if op.Kind().Controlled() {
			return true
		}
	}
	return false
}

func (p *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "qubits:%d params:%d\n", p.qubitCount, p.parameterCount)
	for _, op := range p.ops {
		b.WriteString(op.String())
		b.WriteString("\n")
	}
	return b.String()
}
