package circuit

import (
	"fmt"

	"github.com/oqtopus-team/entcap/common"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindRX
	KindRY
	KindRZ
	KindH
	KindCNOT
	KindCZ
	KindCRX
	KindCRZ
)

var kindNames = map[Kind]string{
	KindRX:   "RX",
	KindRY:   "RY",
	KindRZ:   "RZ",
	KindH:    "H",
	KindCNOT: "CNOT",
	KindCZ:   "CZ",
	KindCRX:  "CRX",
	KindCRZ:  "CRZ",
}

// aliases accepted by ParseKind, keyed by their normalized spelling
var kindAliases = map[string]Kind{
	"rx":       KindRX,
	"ry":       KindRY,
	"rz":       KindRZ,
	"h":        KindH,
	"hadamard": KindH,
	"cnot":     KindCNOT,
	"cx":       KindCNOT,
	"cz":       KindCZ,
	"crx":      KindCRX,
	"crz":      KindCRZ,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[common.NormalizeName(s)]
	if !ok {
		return KindUnknown, fmt.Errorf("unknown gate kind %q", s)
	}
	return k, nil
}

// Parameterized reports whether the gate consumes one parameter slot.
func (k Kind) Parameterized() bool {
	switch k {
	case KindRX, KindRY, KindRZ, KindCRX, KindCRZ:
		return true
	default:
		return false
	}
}

// Controlled reports whether the gate acts on a control and a target wire.
func (k Kind) Controlled() bool {
	switch k {
	case KindCNOT, KindCZ, KindCRX, KindCRZ:
		return true
	default:
		return false
	}
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}
