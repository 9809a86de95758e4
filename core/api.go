// File: api.go
// Role: capability interfaces consumed by window/ and indexlist/.
//
// Each algorithm package accepts the narrowest interface covering the
// operations it needs; a network type opts in by implementing the methods.
// A missing capability therefore surfaces as a compile-time failure at the
// call site rather than a runtime probe.

package core

// Network is the read-only structural surface shared by all logic
// networks. Iteration callbacks run synchronously and must not mutate the
// network. Indexed variants pass the 0-based position within the
// enumeration (PI order, gate creation order, PO order).
type Network interface {
	// Size returns the number of nodes including the constant node.
	Size() int
	// NumPIs returns the number of primary inputs.
	NumPIs() int
	// NumPOs returns the number of primary outputs.
	NumPOs() int
	// NumGates returns the number of gates.
	NumGates() int

	// IsConstant reports whether n is the constant node.
	IsConstant(n Node) bool
	// IsPI reports whether n is a primary input.
	IsPI(n Node) bool
	// Constant returns the signal of the given constant value.
	Constant(value bool) Signal

	// ForeachPI enumerates primary inputs in index order.
	ForeachPI(fn func(n Node, i int))
	// ForeachGate enumerates gates in creation (topological) order.
	ForeachGate(fn func(n Node, i int))
	// ForeachPO enumerates primary-output signals in creation order.
	ForeachPO(fn func(s Signal, i int))
	// ForeachFanin enumerates the fanin signals of gate n.
	ForeachFanin(n Node, fn func(s Signal, i int))
}

// ANDXORNetwork is a Network whose gates are two-input ANDs and XORs.
type ANDXORNetwork interface {
	Network
	// IsAnd reports whether gate n is an AND.
	IsAnd(n Node) bool
	// IsXor reports whether gate n is an XOR.
	IsXor(n Node) bool
}

// MajorityNetwork is a Network whose gates are three-input majorities.
type MajorityNetwork interface {
	Network
	// IsMaj reports whether gate n is a majority.
	IsMaj(n Node) bool
}

// ANDXORBuilder extends ANDXORNetwork with the construction operations the
// index-list insertion path needs.
type ANDXORBuilder interface {
	ANDXORNetwork
	// CreatePI appends a primary input. Fails with ErrPIAfterGate once a
	// gate exists (normalised index order).
	CreatePI() (Signal, error)
	// CreatePO registers s as a primary output.
	CreatePO(s Signal)
	// CreateAnd appends an AND gate over a and b.
	CreateAnd(a, b Signal) Signal
	// CreateXor appends an XOR gate over a and b.
	CreateXor(a, b Signal) Signal
	// CreateNot complements s. Inverters are free edge attributes; no node
	// is created.
	CreateNot(s Signal) Signal
}

// MajorityBuilder extends MajorityNetwork with construction operations.
type MajorityBuilder interface {
	MajorityNetwork
	CreatePI() (Signal, error)
	CreatePO(s Signal)
	// CreateMaj appends a majority gate over a, b and c.
	CreateMaj(a, b, c Signal) Signal
	CreateNot(s Signal) Signal
}

// CellNetwork is the mapped-network surface consumed by the window
// builder: a Network partitioned into cells, each rooted at a designated
// gate, plus per-node traversal-id storage.
//
// The traversal-id scheme replaces per-DFS visited sets: IncrTravID bumps
// a global epoch once per traversal and Visited(n) == TravID() stands in
// for a set lookup. SetVisited and Visited require exclusive access to the
// network for the duration of the traversal.
type CellNetwork interface {
	Network
	// IsCellRoot reports whether n is the root gate of a cell.
	IsCellRoot(n Node) bool
	// ForeachCellFanin enumerates the cell-level fanin of root n: the cell
	// roots and primary inputs feeding n's cell from outside.
	ForeachCellFanin(n Node, fn func(m Node))

	// IncrTravID advances the traversal epoch and returns the new value.
	IncrTravID() uint32
	// TravID returns the current traversal epoch.
	TravID() uint32
	// SetVisited stamps n with epoch id.
	SetVisited(n Node, id uint32)
	// Visited returns the epoch n was last stamped with.
	Visited(n Node) uint32
}
