//go:build unit
// +build unit

package statevec

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/oqtopus-team/entcap/circuit"
	"github.com/oqtopus-team/entcap/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func assertAmplitudes(t *testing.T, want []complex128, b *Buffer) {
	t.Helper()
	require.Equal(t, len(want), b.Len())
	for i, w := range want {
		got := b.Amplitude(i)
		assert.InDelta(t, real(w), real(got), tol, "real part of |%s>", BasisLabel(i, b.QubitCount()))
		assert.InDelta(t, imag(w), imag(got), tol, "imaginary part of |%s>", BasisLabel(i, b.QubitCount()))
	}
}

func assertIdentity(t *testing.T, m Matrix2) {
	t.Helper()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, real(m[i][j]), tol)
			assert.InDelta(t, 0, imag(m[i][j]), tol)
		}
	}
}

func TestMatricesAreUnitary(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, math.Pi, 4.1, 2 * math.Pi} {
		for _, m := range []Matrix2{RX(theta), RY(theta), RZ(theta), Hadamard(), PauliX(), PauliZ()} {
			assertIdentity(t, m.Mul(m.Dagger()))
		}
	}
}

func TestGateMatrix(t *testing.T) {
	tests := []struct {
		kind circuit.Kind
		want Matrix2
	}{
		{kind: circuit.KindRX, want: RX(0.7)},
		{kind: circuit.KindCRX, want: RX(0.7)},
		{kind: circuit.KindRY, want: RY(0.7)},
		{kind: circuit.KindRZ, want: RZ(0.7)},
		{kind: circuit.KindCRZ, want: RZ(0.7)},
		{kind: circuit.KindH, want: Hadamard()},
		{kind: circuit.KindCNOT, want: PauliX()},
		{kind: circuit.KindCZ, want: PauliZ()},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := GateMatrix(tt.kind, 0.7)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := GateMatrix(circuit.KindUnknown, 0)
	assert.Error(t, err)
}

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(3)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, complex128(1), b.Amplitude(0))
	assert.InDelta(t, 1, b.Norm(), tol)

	_, err = NewBuffer(0)
	assert.ErrorIs(t, err, core.ErrConfiguration)
	_, err = NewBuffer(circuit.MaxQubits + 1)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestApplySingleQubit(t *testing.T) {
	s := 1 / math.Sqrt2
	tests := []struct {
		name string
		wire int
		m    Matrix2
		want []complex128
	}{
		{name: "X on qubit 0 sets the low bit", wire: 0, m: PauliX(), want: []complex128{0, 1, 0, 0}},
		{name: "X on qubit 1 sets the high bit", wire: 1, m: PauliX(), want: []complex128{0, 0, 1, 0}},
		{name: "H on qubit 1", wire: 1, m: Hadamard(), want: []complex128{complex(s, 0), 0, complex(s, 0), 0}},
		{name: "RX(pi) flips with phase -i", wire: 0, m: RX(math.Pi), want: []complex128{0, -1i, 0, 0}},
		{name: "RY(pi) flips", wire: 0, m: RY(math.Pi), want: []complex128{0, 1, 0, 0}},
		{name: "RZ only adds phase", wire: 1, m: RZ(math.Pi), want: []complex128{-1i, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer(2)
			require.NoError(t, err)
			require.NoError(t, b.ApplySingleQubit(tt.wire, tt.m))
			assertAmplitudes(t, tt.want, b)
		})
	}
}

func TestApplyControlled(t *testing.T) {
	b, err := NewBuffer(2)
	require.NoError(t, err)
	// control bit is 0, nothing happens
	require.NoError(t, b.ApplyControlled(0, 1, PauliX()))
	assertAmplitudes(t, []complex128{1, 0, 0, 0}, b)

	require.NoError(t, b.ApplySingleQubit(0, PauliX()))
	require.NoError(t, b.ApplyControlled(0, 1, PauliX()))
	assertAmplitudes(t, []complex128{0, 0, 0, 1}, b)

	require.NoError(t, b.ApplyControlled(1, 0, PauliZ()))
	assertAmplitudes(t, []complex128{0, 0, 0, -1}, b)
}

func TestApplyRejectsBadWires(t *testing.T) {
	b, err := NewBuffer(2)
	require.NoError(t, err)
	assert.ErrorIs(t, b.ApplySingleQubit(2, PauliX()), core.ErrConfiguration)
	assert.ErrorIs(t, b.ApplySingleQubit(-1, PauliX()), core.ErrConfiguration)
	assert.ErrorIs(t, b.ApplyControlled(0, 2, PauliX()), core.ErrConfiguration)
	assert.ErrorIs(t, b.ApplyControlled(1, 1, PauliX()), core.ErrConfiguration)
	assert.ErrorIs(t, b.Apply(circuit.RX(0, 3), []float64{0}), core.ErrConfiguration)
	assertAmplitudes(t, []complex128{1, 0, 0, 0}, b)
}

func TestSimulateBellPair(t *testing.T) {
	p, err := circuit.NewProgram(2, 0, circuit.H(0), circuit.CNOT(0, 1))
	require.NoError(t, err)

	b, err := Simulate(p, nil)
	require.NoError(t, err)
	s := complex(1/math.Sqrt2, 0)
	assertAmplitudes(t, []complex128{s, 0, 0, s}, b)
	assert.Equal(t, "00", BasisLabel(0, 2))
	assert.Equal(t, "11", BasisLabel(3, 2))
}

func TestSimulateCZ(t *testing.T) {
	p, err := circuit.NewProgram(2, 0, circuit.H(0), circuit.H(1), circuit.CZ(0, 1))
	require.NoError(t, err)

	b, err := Simulate(p, []float64{})
	require.NoError(t, err)
	assertAmplitudes(t, []complex128{0.5, 0.5, 0.5, -0.5}, b)
}

func TestSimulateOrderMatters(t *testing.T) {
	hThenRZ, err := circuit.NewProgram(1, 1, circuit.H(0), circuit.RZ(0, 0))
	require.NoError(t, err)
	rzThenH, err := circuit.NewProgram(1, 1, circuit.RZ(0, 0), circuit.H(0))
	require.NoError(t, err)

	a, err := Simulate(hThenRZ, []float64{math.Pi})
	require.NoError(t, err)
	b, err := Simulate(rzThenH, []float64{math.Pi})
	require.NoError(t, err)
	s := 1 / math.Sqrt2
	assertAmplitudes(t, []complex128{complex(0, -s), complex(0, s)}, a)
	assertAmplitudes(t, []complex128{complex(0, -s), complex(0, -s)}, b)
}

func TestSimulateParameterCount(t *testing.T) {
	p, err := circuit.NewProgram(1, 2, circuit.RX(0, 0), circuit.RY(0, 1))
	require.NoError(t, err)

	_, err = Simulate(p, []float64{0.1})
	assert.ErrorIs(t, err, core.ErrConfiguration)
	assert.ErrorContains(t, err, "want 2 parameters, got 1")
	_, err = Simulate(nil, nil)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestSimulateKeepsNormalization(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	kinds := []circuit.Kind{
		circuit.KindRX, circuit.KindRY, circuit.KindRZ, circuit.KindH,
		circuit.KindCNOT, circuit.KindCZ, circuit.KindCRX, circuit.KindCRZ,
	}
	for trial := 0; trial < 50; trial++ {
		qubits := 1 + rng.IntN(5)
		b := circuit.NewBuilder(qubits)
		for g := 0; g < 30; g++ {
			k := kinds[rng.IntN(len(kinds))]
			if k.Controlled() && qubits < 2 {
				continue
			}
			c := rng.IntN(qubits)
			tg := rng.IntN(qubits)
			for k.Controlled() && tg == c {
				tg = rng.IntN(qubits)
			}
			switch k {
			case circuit.KindRX:
				b.RX(tg)
			case circuit.KindRY:
				b.RY(tg)
			case circuit.KindRZ:
				b.RZ(tg)
			case circuit.KindH:
				b.H(tg)
			case circuit.KindCNOT:
				b.CNOT(c, tg)
			case circuit.KindCZ:
				b.CZ(c, tg)
			case circuit.KindCRX:
				b.CRX(c, tg)
			case circuit.KindCRZ:
				b.CRZ(c, tg)
			}
		}
		p, err := b.Build()
		require.NoError(t, err)
		params := make([]float64, p.ParameterCount())
		for i := range params {
			params[i] = rng.Float64() * 2 * math.Pi
		}
		s, err := Simulate(p, params)
		require.NoError(t, err)
		assert.InDelta(t, 1, s.Norm(), 1e-9)
	}
}

func TestCheckNormalized(t *testing.T) {
	b, err := NewBuffer(1)
	require.NoError(t, err)
	require.NoError(t, b.ApplySingleQubit(0, Matrix2{{2, 0}, {0, 1}}))
	err = b.CheckNormalized()
	assert.ErrorIs(t, err, core.ErrNumericalAssertion)
	assert.NotErrorIs(t, err, core.ErrConfiguration)
}

func TestFromAmplitudes(t *testing.T) {
	amps := []complex128{0.6, 0, 0, 0.8i}
	b, err := FromAmplitudes(amps)
	require.NoError(t, err)
	assert.Equal(t, 2, b.QubitCount())
	amps[0] = 0
	assert.Equal(t, complex128(0.6), b.Amplitude(0))
	assert.NoError(t, b.CheckNormalized())
	assert.Equal(t, "|00> (0.600000+0.000000i)\n|11> (0.000000+0.800000i)\n", b.String())

	_, err = FromAmplitudes([]complex128{1, 0, 0})
	assert.ErrorIs(t, err, core.ErrConfiguration)
}
