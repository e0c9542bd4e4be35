package entangle

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/oqtopus-team/entcap/core"
	"github.com/oqtopus-team/entcap/statevec"
	"gonum.org/v1/gonum/floats"
)

// DensityMatrix is the reduced state of one qubit, indexed by that qubit's bit.
type DensityMatrix [2][2]complex128

// ReducedDensityMatrix traces every other qubit out of b. With M the 2 x 2^(n-1)
// matrix whose row is the value of bit qubit, it returns M·M†.
func ReducedDensityMatrix(b *statevec.Buffer, qubit int) (DensityMatrix, error) {
	var rho DensityMatrix
	if qubit < 0 || qubit >= b.QubitCount() {
		return rho, core.NewConfigurationError("purity",
			fmt.Sprintf("qubit %d is outside [0, %d)", qubit, b.QubitCount()))
	}
	bit := 1 << qubit
	for i := 0; i < b.Len(); i++ {
		if i&bit != 0 {
			continue
		}
		a0 := b.Amplitude(i)
		a1 := b.Amplitude(i | bit)
		rho[0][0] += a0 * cmplx.Conj(a0)
		rho[0][1] += a0 * cmplx.Conj(a1)
		rho[1][0] += a1 * cmplx.Conj(a0)
		rho[1][1] += a1 * cmplx.Conj(a1)
	}
	return rho, nil
}

func (d DensityMatrix) Trace() complex128 {
	return d[0][0] + d[1][1]
}

// Purity is Re(tr(ρ·ρ)).
func (d DensityMatrix) Purity() float64 {
	var tr complex128
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			tr += d[i][j] * d[j][i]
		}
	}
	return real(tr)
}

// Purity of one qubit of b, in [0.5, 1]. 1 means the qubit is not entangled with
// the rest, 0.5 means it is maximally mixed.
func Purity(b *statevec.Buffer, qubit int) (float64, error) {
	rho, err := ReducedDensityMatrix(b, qubit)
	if err != nil {
		return 0, err
	}
	// rounding may step just outside the bounds at a product or Bell state
	return math.Min(1, math.Max(0.5, rho.Purity())), nil
}

// MeyerWallach returns Q = 2·(1 − mean single-qubit purity) of b, in [0, 1].
func MeyerWallach(b *statevec.Buffer) (float64, error) {
	n := b.QubitCount()
	purities := make([]float64, n)
	for q := 0; q < n; q++ {
		p, err := Purity(b, q)
		if err != nil {
			return 0, err
		}
		purities[q] = p
	}
	return 2 * (1 - floats.Sum(purities)/float64(n)), nil
}
