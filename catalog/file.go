package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/entcap/circuit"
	"github.com/oqtopus-team/entcap/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type fileGate struct {
	Kind  string `toml:"kind"`
	Wires []int  `toml:"wires"`
	Param *int   `toml:"param"`
}

type fileCircuit struct {
	Name       string     `toml:"name"`
	Qubits     int        `toml:"qubits"`
	Parameters *int       `toml:"parameters"`
	Gates      []fileGate `toml:"gate"`
}

type file struct {
	Circuits []fileCircuit `toml:"circuit"`
}

// Parse reads a catalog such as
//
//	[[circuit]]
//	name = "bell"
//	qubits = 2
//	[[circuit.gate]]
//	kind = "h"
//	wires = [0]
//	[[circuit.gate]]
//	kind = "cnot"
//	wires = [0, 1]
//
// A rotation without param takes the next free slot. Without parameters the
// circuit declares as many parameters as slots it uses.
func Parse(tomlString string) (*Catalog, error) {
	var f file
	md, err := toml.Decode(tomlString, &f)
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown catalog keys %v", undecoded)
	}
	if len(f.Circuits) == 0 {
		return nil, errors.New("catalog defines no circuit")
	}
	c := New()
	var errs error
	for i, fc := range f.Circuits {
		p, err := fc.program()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "circuit %d (%s)", i, fc.Name))
			continue
		}
		if err := c.Add(fc.Name, p); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

func (fc fileCircuit) program() (*circuit.Program, error) {
	b := circuit.NewBuilder(fc.Qubits)
	for j, fg := range fc.Gates {
		k, err := circuit.ParseKind(fg.Kind)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", j, err)
		}
		param := circuit.NoParam
		switch {
		case fg.Param != nil:
			param = *fg.Param
		case k.Parameterized():
			param = b.NextSlot()
		}
		op, err := circuit.NewOperation(k, fg.Wires, param)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", j, err)
		}
		b.Add(op)
	}
	if fc.Parameters != nil {
		return b.BuildWithParameters(*fc.Parameters)
	}
	return b.Build()
}

func LoadFile(path string) (*Catalog, error) {
	s, err := common.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read catalog file/path:%s/reason:%s", path, err))
		return nil, err
	}
	c, err := Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	zap.L().Debug(fmt.Sprintf("loaded %d circuits from %s", c.Len(), path))
	return c, nil
}
