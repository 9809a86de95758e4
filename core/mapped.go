package core

import "fmt"

// mappedGate is a k-input gate; fanin arity is per-gate.
type mappedGate struct {
	fanins []Signal
}

// Mapped is a technology-mapped host network: a k-input gate network
// partitioned into cells, each rooted at a designated gate. The cell
// cover is declared explicitly with SetCell; mapping algorithms that
// would compute it live outside this library.
//
// Mapped carries the per-node traversal-id storage required by the
// CellNetwork capability: a global epoch counter plus one stamp per node,
// so a DFS marks nodes by bumping the epoch once instead of clearing a
// visited set.
type Mapped struct {
	numPIs int
	gates  []mappedGate
	pos    []Signal

	cellRoot  []bool   // indexed by Node
	cellFanin [][]Node // indexed by Node; nil unless cellRoot

	visited []uint32 // indexed by Node
	travID  uint32
}

// NewMapped returns a mapped network with numPIs primary inputs.
func NewMapped(numPIs int) *Mapped {
	m := &Mapped{numPIs: numPIs}
	m.cellRoot = make([]bool, 1+numPIs)
	m.cellFanin = make([][]Node, 1+numPIs)
	m.visited = make([]uint32, 1+numPIs)
	return m
}

// Size returns the node count including the constant node.
func (m *Mapped) Size() int { return 1 + m.numPIs + len(m.gates) }

// NumPIs returns the number of primary inputs.
func (m *Mapped) NumPIs() int { return m.numPIs }

// NumPOs returns the number of primary outputs.
func (m *Mapped) NumPOs() int { return len(m.pos) }

// NumGates returns the number of gates.
func (m *Mapped) NumGates() int { return len(m.gates) }

// IsConstant reports whether n is the constant node.
func (m *Mapped) IsConstant(n Node) bool { return n == ConstantNode }

// IsPI reports whether n is a primary input.
func (m *Mapped) IsPI(n Node) bool { return n >= 1 && int(n) <= m.numPIs }

func (m *Mapped) isGate(n Node) (int, bool) {
	i := int(n) - 1 - m.numPIs
	if i < 0 || i >= len(m.gates) {
		return 0, false
	}
	return i, true
}

// Constant returns the signal of the given constant value.
func (m *Mapped) Constant(value bool) Signal {
	return NewSignal(ConstantNode, value)
}

// ForeachPI enumerates primary inputs in index order.
func (m *Mapped) ForeachPI(fn func(n Node, i int)) {
	for i := 0; i < m.numPIs; i++ {
		fn(Node(i+1), i)
	}
}

// ForeachGate enumerates gates in creation order.
func (m *Mapped) ForeachGate(fn func(n Node, i int)) {
	for i := range m.gates {
		fn(Node(1+m.numPIs+i), i)
	}
}

// ForeachPO enumerates primary-output signals in creation order.
func (m *Mapped) ForeachPO(fn func(s Signal, i int)) {
	for i, s := range m.pos {
		fn(s, i)
	}
}

// ForeachFanin enumerates the fanin signals of gate n.
func (m *Mapped) ForeachFanin(n Node, fn func(s Signal, i int)) {
	i, ok := m.isGate(n)
	if !ok {
		return
	}
	for j, s := range m.gates[i].fanins {
		fn(s, j)
	}
}

// CreateGate appends a gate over the given fanin signals and returns its
// signal.
func (m *Mapped) CreateGate(fanins ...Signal) Signal {
	fi := make([]Signal, len(fanins))
	copy(fi, fanins)
	m.gates = append(m.gates, mappedGate{fanins: fi})
	m.cellRoot = append(m.cellRoot, false)
	m.cellFanin = append(m.cellFanin, nil)
	m.visited = append(m.visited, 0)
	return NewSignal(Node(m.numPIs+len(m.gates)), false)
}

// CreatePO registers s as a primary output.
func (m *Mapped) CreatePO(s Signal) {
	m.pos = append(m.pos, s)
}

// SetCell declares root as a cell root with the given cell-level fanin
// (the cell roots and primary inputs feeding root's cell from outside).
// root must be a gate.
func (m *Mapped) SetCell(root Node, fanin []Node) error {
	if _, ok := m.isGate(root); !ok {
		return fmt.Errorf("%w: node %d", ErrNotCellRoot, root)
	}
	fi := make([]Node, len(fanin))
	copy(fi, fanin)
	m.cellRoot[root] = true
	m.cellFanin[root] = fi
	return nil
}

// IsCellRoot reports whether n is the root gate of a cell.
func (m *Mapped) IsCellRoot(n Node) bool {
	return int(n) < len(m.cellRoot) && m.cellRoot[n]
}

// ForeachCellFanin enumerates the declared cell fanin of root n.
func (m *Mapped) ForeachCellFanin(n Node, fn func(m Node)) {
	if int(n) >= len(m.cellFanin) {
		return
	}
	for _, f := range m.cellFanin[n] {
		fn(f)
	}
}

// IncrTravID advances the traversal epoch and returns the new value.
func (m *Mapped) IncrTravID() uint32 {
	m.travID++
	return m.travID
}

// TravID returns the current traversal epoch.
func (m *Mapped) TravID() uint32 {
	return m.travID
}

// SetVisited stamps n with epoch id.
func (m *Mapped) SetVisited(n Node, id uint32) {
	if int(n) < len(m.visited) {
		m.visited[n] = id
	}
}

// Visited returns the epoch n was last stamped with.
func (m *Mapped) Visited(n Node) uint32 {
	if int(n) >= len(m.visited) {
		return 0
	}
	return m.visited[n]
}
