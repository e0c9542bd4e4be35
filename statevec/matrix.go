package statevec

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/oqtopus-team/entcap/circuit"
)

// Matrix2 is a 2x2 complex matrix acting on the amplitude pair (|0>, |1>) of one qubit.
type Matrix2 [2][2]complex128

func RX(theta float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return Matrix2{{c, js}, {js, c}}
}

func RY(theta float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix2{{c, -s}, {s, c}}
}

func RZ(theta float64) Matrix2 {
	phase := cmplx.Exp(complex(0, theta/2))
	return Matrix2{{cmplx.Conj(phase), 0}, {0, phase}}
}

func Hadamard() Matrix2 {
	h := complex(1/math.Sqrt2, 0)
	return Matrix2{{h, h}, {h, -h}}
}

func PauliX() Matrix2 { return Matrix2{{0, 1}, {1, 0}} }
func PauliZ() Matrix2 { return Matrix2{{1, 0}, {0, -1}} }

// Mul returns m·n.
func (m Matrix2) Mul(n Matrix2) Matrix2 {
	var r Matrix2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j]
		}
	}
	return r
}

// Dagger returns the conjugate transpose.
func (m Matrix2) Dagger() Matrix2 {
	return Matrix2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// GateMatrix is the matrix a gate of kind k applies to its target wire.
// Controlled kinds return the matrix applied when the control bit is 1.
func GateMatrix(k circuit.Kind, theta float64) (Matrix2, error) {
	switch k {
	case circuit.KindRX, circuit.KindCRX:
		return RX(theta), nil
	case circuit.KindRY:
		return RY(theta), nil
	case circuit.KindRZ, circuit.KindCRZ:
		return RZ(theta), nil
	case circuit.KindH:
		return Hadamard(), nil
	case circuit.KindCNOT:
		return PauliX(), nil
	case circuit.KindCZ:
		return PauliZ(), nil
	default:
		return Matrix2{}, fmt.Errorf("no matrix for gate kind %s", k)
	}
}
