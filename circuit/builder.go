package circuit

// Builder appends gates and hands out parameter slots in gate order, which is
// how every circuit of the catalog numbers its parameters.
type Builder struct {
	qubits int
	next   int
	ops    []Operation
}

func NewBuilder(qubits int) *Builder {
	return &Builder{qubits: qubits}
}

func (b *Builder) slot() int {
	s := b.next
	b.next++
	return s
}

func (b *Builder) RX(target int) *Builder { return b.add(RX(target, b.slot())) }
func (b *Builder) RY(target int) *Builder { return b.add(RY(target, b.slot())) }
func (b *Builder) RZ(target int) *Builder { return b.add(RZ(target, b.slot())) }
func (b *Builder) H(target int) *Builder  { return b.add(H(target)) }

func (b *Builder) CNOT(control, target int) *Builder { return b.add(CNOT(control, target)) }
func (b *Builder) CZ(control, target int) *Builder   { return b.add(CZ(control, target)) }
func (b *Builder) CRX(control, target int) *Builder  { return b.add(CRX(control, target, b.slot())) }
func (b *Builder) CRZ(control, target int) *Builder  { return b.add(CRZ(control, target, b.slot())) }

// Add appends an already built operation; its parameter slot is kept as is.
func (b *Builder) Add(op Operation) *Builder { return b.add(op) }

func (b *Builder) add(op Operation) *Builder {
	b.ops = append(b.ops, op)
	if p := op.ParamIndex(); p >= b.next {
		b.next = p + 1
	}
	return b
}

// NextSlot is the slot the next parameterized gate would receive.
func (b *Builder) NextSlot() int { return b.next }

// Build declares exactly as many parameters as slots were handed out.
func (b *Builder) Build() (*Program, error) {
	return NewProgram(b.qubits, b.next, b.ops...)
}

// BuildWithParameters declares n parameters; slots beyond n fail validation.
func (b *Builder) BuildWithParameters(n int) (*Program, error) {
	return NewProgram(b.qubits, n, b.ops...)
}
