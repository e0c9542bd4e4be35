package catalog

import (
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/entcap/circuit"
)

type gate struct {
	kind  circuit.Kind
	wires []int
}

type definition struct {
	name   string
	qubits int
	params int
	gates  []gate
}

const studyQubits = 4

func g(k circuit.Kind, wires ...int) gate { return gate{kind: k, wires: wires} }

// layer applies kinds in turn to every wire: layer(RX, RZ) is RX(0) RZ(0) RX(1) RZ(1) ...
func layer(kinds ...circuit.Kind) []gate {
	gates := make([]gate, 0, studyQubits*len(kinds))
	for w := 0; w < studyQubits; w++ {
		for _, k := range kinds {
			gates = append(gates, g(k, w))
		}
	}
	return gates
}

// pairs applies k to every (control, target) pair in order.
func pairs(k circuit.Kind, wires ...[2]int) []gate {
	gates := make([]gate, len(wires))
	for i, w := range wires {
		gates[i] = g(k, w[0], w[1])
	}
	return gates
}

func seq(parts ...[]gate) []gate {
	var gates []gate
	for _, p := range parts {
		gates = append(gates, p...)
	}
	return gates
}

const (
	rx   = circuit.KindRX
	ry   = circuit.KindRY
	rz   = circuit.KindRZ
	h    = circuit.KindH
	cnot = circuit.KindCNOT
	cz   = circuit.KindCZ
	crx  = circuit.KindCRX
	crz  = circuit.KindCRZ
)

var (
	ladder    = [][2]int{{1, 0}, {2, 1}, {3, 2}}
	allToAll  = [][2]int{{3, 2}, {3, 1}, {3, 0}, {2, 3}, {2, 1}, {2, 0}, {1, 3}, {1, 2}, {1, 0}, {0, 3}, {0, 2}, {0, 1}}
	ringDown  = [][2]int{{3, 0}, {2, 3}, {1, 2}, {0, 1}}
	ringUp    = [][2]int{{3, 2}, {0, 3}, {1, 0}, {2, 1}}
	chain     = [][2]int{{0, 1}, {1, 2}, {2, 3}}
	chainRing = [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
)

// studyCircuits are the 19 four-qubit templates of the expressibility and
// entangling capability study. Parameter slots are numbered in gate order.
var studyCircuits = []definition{
	{name: "circuit1", qubits: 4, params: 8, gates: layer(rx, rz)},
	{name: "circuit2", qubits: 4, params: 8, gates: seq(layer(rx, rz), pairs(cnot, ladder...))},
	{name: "circuit3", qubits: 4, params: 11, gates: seq(layer(rx, rz), pairs(crz, ladder...))},
	{name: "circuit4", qubits: 4, params: 11, gates: seq(layer(rx, rz), pairs(crx, ladder...))},
	{name: "circuit5", qubits: 4, params: 28, gates: seq(layer(rx, rz), pairs(crz, allToAll...), layer(rx, rz))},
	{name: "circuit6", qubits: 4, params: 28, gates: seq(layer(rx, rz), pairs(crx, allToAll...), layer(rx, rz))},
	{name: "circuit7", qubits: 4, params: 19, gates: seq(
		layer(rx, rz), pairs(crz, [2]int{1, 0}, [2]int{3, 2}),
		layer(rx, rz), pairs(crz, [2]int{2, 1}),
	)},
	{name: "circuit8", qubits: 4, params: 19, gates: seq(
		layer(rx, rz), pairs(crx, [2]int{1, 0}, [2]int{3, 2}),
		layer(rx, rz), pairs(crx, [2]int{2, 1}),
	)},
	{name: "circuit9", qubits: 4, params: 4, gates: seq(layer(h), pairs(cz, chain...), layer(rx))},
	{name: "circuit10", qubits: 4, params: 8, gates: seq(layer(ry), pairs(cz, chainRing...), layer(ry))},
	{name: "circuit11", qubits: 4, params: 12, gates: seq(
		layer(ry, rz), pairs(cnot, [2]int{1, 0}, [2]int{3, 2}),
		[]gate{g(ry, 1), g(rz, 1), g(ry, 2), g(rz, 2)}, pairs(cnot, [2]int{2, 1}),
	)},
	{name: "circuit12", qubits: 4, params: 12, gates: seq(
		layer(ry, rz), pairs(cz, [2]int{1, 0}, [2]int{3, 2}),
		[]gate{g(ry, 1), g(rz, 1), g(ry, 2), g(rz, 2)}, pairs(cz, [2]int{2, 1}),
	)},
	{name: "circuit13", qubits: 4, params: 16, gates: seq(layer(ry), pairs(crz, ringDown...), layer(ry), pairs(crz, ringUp...))},
	{name: "circuit14", qubits: 4, params: 16, gates: seq(layer(ry), pairs(crx, ringDown...), layer(ry), pairs(crx, ringUp...))},
	{name: "circuit15", qubits: 4, params: 8, gates: seq(layer(ry), pairs(cnot, ringDown...), layer(ry), pairs(cnot, ringUp...))},
	{name: "circuit16", qubits: 4, params: 11, gates: seq(layer(rx, rz), pairs(crz, [2]int{1, 0}, [2]int{3, 2}, [2]int{2, 1}))},
	{name: "circuit17", qubits: 4, params: 11, gates: seq(layer(rx, rz), pairs(crx, [2]int{1, 0}, [2]int{3, 2}, [2]int{2, 1}))},
	{name: "circuit18", qubits: 4, params: 12, gates: seq(layer(rx, rz), pairs(crz, ringDown...))},
	{name: "circuit19", qubits: 4, params: 12, gates: seq(layer(rx, rz), pairs(crx, ringDown...))},
}

func (d definition) program() (*circuit.Program, error) {
	b := circuit.NewBuilder(d.qubits)
	for _, gt := range d.gates {
		param := circuit.NoParam
		if gt.kind.Parameterized() {
			param = b.NextSlot()
		}
		op, err := circuit.NewOperation(gt.kind, gt.wires, param)
		if err != nil {
			return nil, err
		}
		b.Add(op)
	}
	return b.BuildWithParameters(d.params)
}

// Default returns the built-in study catalog.
func Default() (*Catalog, error) {
	c := New()
	for _, d := range studyCircuits {
		p, err := d.program()
		if err != nil {
			return nil, errors.Wrapf(err, "circuit %s", d.name)
		}
		if err := c.Add(d.name, p); err != nil {
			return nil, err
		}
	}
	return c, nil
}
