// Package statevec simulates circuits on a dense statevector.
//
// Basis index bit k (value 1<<k) holds the state of qubit k, so qubit 0 is the
// least significant bit. Every kernel and every reader of the amplitudes uses
// this convention.
package statevec

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/oqtopus-team/entcap/circuit"
	"github.com/oqtopus-team/entcap/core"
)

// NormTolerance bounds the drift of the squared norm after a simulation.
const NormTolerance = 1e-9

type Buffer struct {
	amps   []complex128
	qubits int
}

// NewBuffer returns |0...0> on the given number of qubits.
func NewBuffer(qubits int) (*Buffer, error) {
	if qubits < 1 || qubits > circuit.MaxQubits {
		return nil, core.NewConfigurationError("statevec",
			fmt.Sprintf("qubit count %d is outside [1, %d]", qubits, circuit.MaxQubits))
	}
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &Buffer{amps: amps, qubits: qubits}, nil
}

// FromAmplitudes wraps a copy of amps; len(amps) must be a power of two >= 2.
func FromAmplitudes(amps []complex128) (*Buffer, error) {
	n := len(amps)
	if n < 2 || n&(n-1) != 0 {
		return nil, core.NewConfigurationError("statevec",
			fmt.Sprintf("%d amplitudes is not a power of two", n))
	}
	qubits := 0
	for 1<<qubits < n {
		qubits++
	}
	if qubits > circuit.MaxQubits {
		return nil, core.NewConfigurationError("statevec",
			fmt.Sprintf("qubit count %d is outside [1, %d]", qubits, circuit.MaxQubits))
	}
	return &Buffer{amps: slices.Clone(amps), qubits: qubits}, nil
}

func (b *Buffer) QubitCount() int { return b.qubits }
func (b *Buffer) Len() int        { return len(b.amps) }

func (b *Buffer) Amplitude(i int) complex128 { return b.amps[i] }

// Amplitudes returns a copy of the amplitude vector.
func (b *Buffer) Amplitudes() []complex128 {
	return slices.Clone(b.amps)
}

// Probability is |amplitude|^2 of basis index i.
func (b *Buffer) Probability(i int) float64 {
	a := b.amps[i]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Norm is the sum of squared magnitudes.
func (b *Buffer) Norm() float64 {
	sum := 0.0
	for i := range b.amps {
		sum += b.Probability(i)
	}
	return sum
}

func (b *Buffer) CheckNormalized() error {
	norm := b.Norm()
	if math.Abs(norm-1) > NormTolerance || math.IsNaN(norm) {
		return &core.NumericalAssertionError{Norm: norm, Tolerance: NormTolerance}
	}
	return nil
}

func (b *Buffer) checkWire(op string, wire int) error {
	if wire < 0 || wire >= b.qubits {
		return core.NewConfigurationError(op,
			fmt.Sprintf("wire %d is outside [0, %d)", wire, b.qubits))
	}
	return nil
}

// ApplySingleQubit replaces every amplitude pair that differs only in bit wire by m
// applied to that pair.
func (b *Buffer) ApplySingleQubit(wire int, m Matrix2) error {
	if err := b.checkWire("apply", wire); err != nil {
		return err
	}
	bit := 1 << wire
	for i := range b.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := b.amps[i], b.amps[j]
			b.amps[i] = m[0][0]*a0 + m[0][1]*a1
			b.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
	return nil
}

// ApplyControlled applies m to target on the basis states whose control bit is 1.
func (b *Buffer) ApplyControlled(control, target int, m Matrix2) error {
	if err := b.checkWire("apply controlled", control); err != nil {
		return err
	}
	if err := b.checkWire("apply controlled", target); err != nil {
		return err
	}
	if control == target {
		return core.NewConfigurationError("apply controlled",
			fmt.Sprintf("wire %d is both control and target", control))
	}
	cBit := 1 << control
	tBit := 1 << target
	for i := range b.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			a0, a1 := b.amps[i], b.amps[j]
			b.amps[i] = m[0][0]*a0 + m[0][1]*a1
			b.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
	return nil
}

// Apply dispatches op, reading its parameter slot from params.
func (b *Buffer) Apply(op circuit.Operation, params []float64) error {
	theta := 0.0
	if p := op.ParamIndex(); p != circuit.NoParam {
		if p < 0 || p >= len(params) {
			return core.NewConfigurationError("apply",
				fmt.Sprintf("%s reads parameter slot %d of %d", op, p, len(params)))
		}
		theta = params[p]
	}
	m, err := GateMatrix(op.Kind(), theta)
	if err != nil {
		return core.WrapConfigurationError("apply", err)
	}
	switch o := op.(type) {
	case circuit.SingleQubit:
		return b.ApplySingleQubit(o.Target, m)
	case circuit.Controlled:
		return b.ApplyControlled(o.Control, o.Target, m)
	default:
		return core.NewConfigurationError("apply", fmt.Sprintf("unsupported operation %T", op))
	}
}

// BasisLabel renders basis index i over n qubits with qubit 0 first.
func BasisLabel(i, n int) string {
	var sb strings.Builder
	for k := 0; k < n; k++ {
		if i&(1<<k) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *Buffer) String() string {
	var sb strings.Builder
	for i, a := range b.amps {
		if cmplx.Abs(a) < 1e-12 {
			continue
		}
		fmt.Fprintf(&sb, "|%s> %.6f\n", BasisLabel(i, b.qubits), a)
	}
	return sb.String()
}
