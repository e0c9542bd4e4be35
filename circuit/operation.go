package circuit

import "fmt"

// NoParam marks an operation that reads no parameter slot.
const NoParam = -1

// Operation is one gate of a Program. The set of implementations is closed:
// SingleQubit and Controlled.
type Operation interface {
	Kind() Kind
	// ParamIndex returns the parameter slot the gate reads, or NoParam.
	ParamIndex() int
	Wires() []int
	String() string

	isOperation()
}

type SingleQubit struct {
	Gate   Kind
	Target int
	Param  int
}

type Controlled struct {
	Gate    Kind
	Control int
	Target  int
	Param   int
}

func (s SingleQubit) Kind() Kind      { return s.Gate }
func (s SingleQubit) ParamIndex() int { return s.Param }
func (s SingleQubit) Wires() []int    { return []int{s.Target} }
func (SingleQubit) isOperation()      {}

func (s SingleQubit) String() string {
	if s.Param == NoParam {
		return fmt.Sprintf("%s q[%d]", s.Gate, s.Target)
	}
	return fmt.Sprintf("%s(p[%d]) q[%d]", s.Gate, s.Param, s.Target)
}

func (c Controlled) Kind() Kind      { return c.Gate }
func (c Controlled) ParamIndex() int { return c.Param }
func (c Controlled) Wires() []int    { return []int{c.Control, c.Target} }
func (Controlled) isOperation()      {}

func (c Controlled) String() string {
	if c.Param == NoParam {
		return fmt.Sprintf("%s q[%d], q[%d]", c.Gate, c.Control, c.Target)
	}
	return fmt.Sprintf("%s(p[%d]) q[%d], q[%d]", c.Gate, c.Param, c.Control, c.Target)
}

func RX(target, param int) Operation { return SingleQubit{Gate: KindRX, Target: target, Param: param} }
func RY(target, param int) Operation { return SingleQubit{Gate: KindRY, Target: target, Param: param} }
func RZ(target, param int) Operation { return SingleQubit{Gate: KindRZ, Target: target, Param: param} }
func H(target int) Operation         { return SingleQubit{Gate: KindH, Target: target, Param: NoParam} }

func CNOT(control, target int) Operation {
	return Controlled{Gate: KindCNOT, Control: control, Target: target, Param: NoParam}
}

func CZ(control, target int) Operation {
	return Controlled{Gate: KindCZ, Control: control, Target: target, Param: NoParam}
}

func CRX(control, target, param int) Operation {
	return Controlled{Gate: KindCRX, Control: control, Target: target, Param: param}
}

func CRZ(control, target, param int) Operation {
	return Controlled{Gate: KindCRZ, Control: control, Target: target, Param: param}
}

// NewOperation builds an operation of kind k on wires (target, or control then target).
func NewOperation(k Kind, wires []int, param int) (Operation, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unknown gate kind %d", k)
	}
	if k.Controlled() {
		if len(wires) != 2 {
			return nil, fmt.Errorf("%s takes 2 wires, got %d", k, len(wires))
		}
		return Controlled{Gate: k, Control: wires[0], Target: wires[1], Param: param}, nil
	}
	if len(wires) != 1 {
		return nil, fmt.Errorf("%s takes 1 wire, got %d", k, len(wires))
	}
	return SingleQubit{Gate: k, Target: wires[0], Param: param}, nil
}
