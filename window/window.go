package window

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlogic/core"
)

// Builder computes bounded cell windows over a mapped network.
//
// A Builder holds a non-owning reference to the network and mutates only
// its own state plus the network's traversal marks; construct once per
// network, then call ComputeWindowFor per pivot.
type Builder struct {
	ntk core.CellNetwork

	nodes  *nodeSet // cell roots in current window
	gates  *nodeSet // gates in current window
	leaves *nodeSet // leaves of current window
	roots  *nodeSet // roots of current window

	cellRefs    []uint32      // per-node cell-level reference counts
	cellParents [][]core.Node // per-node parent cells

	numConstants int
	maxGates     int
	log          zerolog.Logger
}

// NewBuilder validates ntk, initializes the per-node reference counts and
// parent lists with a single pass over the network, and returns a Builder
// ready for ComputeWindowFor.
func NewBuilder(ntk core.CellNetwork, opts ...Option) (*Builder, error) {
	if ntk == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	b := &Builder{
		ntk:          ntk,
		nodes:        newNodeSet(o.MaxGates >> 1),
		gates:        newNodeSet(o.MaxGates),
		leaves:       newNodeSet(o.MaxGates),
		roots:        newNodeSet(o.MaxGates >> 1),
		cellRefs:     make([]uint32, ntk.Size()),
		cellParents:  make([][]core.Node, ntk.Size()),
		numConstants: 1,
		maxGates:     o.MaxGates,
		log:          o.Logger,
	}
	if ntk.Constant(true).Node() != ntk.Constant(false).Node() {
		b.numConstants = 2
	}
	b.initCellRefs()
	return b, nil
}

// initCellRefs counts, per node, the cell-fanin references originating at
// cell roots plus one per primary output, and records each node's parent
// cells.
func (b *Builder) initCellRefs() {
	b.ntk.ForeachGate(func(n core.Node, _ int) {
		if !b.ntk.IsCellRoot(n) {
			return
		}
		b.ntk.ForeachCellFanin(n, func(m core.Node) {
			b.cellRefs[m]++
			b.cellParents[m] = append(b.cellParents[m], n)
		})
	})
	b.ntk.ForeachPO(func(s core.Signal, _ int) {
		b.cellRefs[s.Node()]++
	})
}

// ComputeWindowFor populates the window sets around pivot. The pivot must
// be a cell root; the resulting window covers at most MaxGates gates.
func (b *Builder) ComputeWindowFor(pivot core.Node) error {
	if !b.ntk.IsCellRoot(pivot) {
		return fmt.Errorf("%w: node %d", ErrNotCellRoot, pivot)
	}

	// reset old window
	b.nodes.clear()
	b.gates.clear()

	mffc := make([]core.Node, 0, b.maxGates)
	mffc = b.collectMFFC(pivot, mffc)
	if len(mffc) > b.maxGates {
		return fmt.Errorf("%w: pivot %d covers %d gates, budget %d",
			ErrPivotTooLarge, pivot, len(mffc), b.maxGates)
	}
	b.addNode(pivot, mffc)

	for {
		next, ok := b.findNextPivot()
		if !ok {
			break
		}
		mffc = b.collectMFFC(next, mffc[:0])
		if b.gates.len()+len(mffc) > b.maxGates {
			break
		}
		b.addNode(next, mffc)
		b.log.Debug().
			Uint32("pivot", uint32(next)).
			Int("cells", b.nodes.len()).
			Int("gates", b.gates.len()).
			Msg("window: absorbed cell")
	}

	b.findLeavesAndRoots()
	b.log.Debug().
		Uint32("pivot", uint32(pivot)).
		Int("cells", b.nodes.len()).
		Int("gates", b.gates.len()).
		Int("leaves", b.leaves.len()).
		Int("roots", b.roots.len()).
		Msg("window: computed")
	return nil
}

// NumPIs returns the number of window inputs (leaves).
func (b *Builder) NumPIs() int { return b.leaves.len() }

// NumPOs returns the number of window outputs (roots).
func (b *Builder) NumPOs() int { return b.roots.len() }

// NumGates returns the number of gates covered by the window.
func (b *Builder) NumGates() int { return b.gates.len() }

// NumCells returns the number of cells absorbed into the window.
func (b *Builder) NumCells() int { return b.nodes.len() }

// Size returns the window's node count: constants, leaves, and gates.
func (b *Builder) Size() int {
	return b.numConstants + b.leaves.len() + b.gates.len()
}

// ForeachPI enumerates the window's leaves in insertion order.
func (b *Builder) ForeachPI(fn func(n core.Node, i int)) {
	for i, n := range b.leaves.order {
		fn(n, i)
	}
}

// ForeachGate enumerates the window's gates in insertion order.
func (b *Builder) ForeachGate(fn func(n core.Node, i int)) {
	for i, n := range b.gates.order {
		fn(n, i)
	}
}

// ForeachRoot enumerates the window's roots in insertion order.
func (b *Builder) ForeachRoot(fn func(n core.Node, i int)) {
	for i, n := range b.roots.order {
		fn(n, i)
	}
}

// Nodes returns the window's cell roots in insertion order.
func (b *Builder) Nodes() []core.Node { return b.nodes.slice() }

// Gates returns the window's gates in insertion order.
func (b *Builder) Gates() []core.Node { return b.gates.slice() }

// Leaves returns the window's leaves in insertion order.
func (b *Builder) Leaves() []core.Node { return b.leaves.slice() }

// Roots returns the window's roots in insertion order.
func (b *Builder) Roots() []core.Node { return b.roots.slice() }

// CellRefs returns a snapshot of the per-node reference counts, for
// diagnostics. Outside ComputeWindowFor the counts always equal their
// post-construction values.
func (b *Builder) CellRefs() []uint32 {
	out := make([]uint32, len(b.cellRefs))
	copy(out, b.cellRefs)
	return out
}

// collectMFFC appends pivot's cell-bounded MFFC to out, skipping gates
// already in the window, and returns the extended slice.
func (b *Builder) collectMFFC(pivot core.Node, out []core.Node) []core.Node {
	b.ntk.IncrTravID()

	// The cell fanin acts as the traversal frontier: recursion stops there.
	id := b.ntk.TravID()
	b.ntk.SetVisited(b.ntk.Constant(false).Node(), id)
	b.ntk.SetVisited(b.ntk.Constant(true).Node(), id)
	b.ntk.ForeachCellFanin(pivot, func(m core.Node) {
		b.ntk.SetVisited(m, id)
	})

	collected := out
	var rec func(n core.Node)
	rec = func(n core.Node) {
		if b.ntk.Visited(n) == id {
			return
		}
		if b.ntk.IsConstant(n) || b.ntk.IsPI(n) {
			return
		}
		b.ntk.SetVisited(n, id)
		b.ntk.ForeachFanin(n, func(s core.Signal, _ int) {
			rec(s.Node())
		})
		collected = append(collected, n)
	}
	rec(pivot)

	// drop gates the window already covers
	kept := collected[:len(out)]
	for _, g := range collected[len(out):] {
		if !b.gates.has(g) {
			kept = append(kept, g)
		}
	}
	return kept
}

// addNode absorbs pivot and its MFFC gates into the window.
func (b *Builder) addNode(pivot core.Node, mffc []core.Node) {
	b.nodes.add(pivot)
	for _, g := range mffc {
		b.gates.add(g)
	}
}

// withDerefed removes the window's own cell-fanin references from
// cellRefs, runs fn against the residual counts, and rebalances before
// returning on every path. The residuals count external users only.
func (b *Builder) withDerefed(fn func()) {
	for _, n := range b.nodes.order {
		b.ntk.ForeachCellFanin(n, func(m core.Node) {
			b.cellRefs[m]--
		})
	}
	defer func() {
		for _, n := range b.nodes.order {
			b.ntk.ForeachCellFanin(n, func(m core.Node) {
				b.cellRefs[m]++
			})
		}
	}()
	fn()
}

// findNextPivot selects the next cell to absorb, or reports false when
// the window cannot grow further.
func (b *Builder) findNextPivot() (core.Node, bool) {
	var (
		next  core.Node
		found bool
	)
	b.withDerefed(func() {
		inputs := make(map[core.Node]struct{})
		candidates := b.collectCandidates(inputs)
		if len(candidates) == 0 {
			return
		}
		next, found = b.bestCandidate(candidates, inputs), true
	})
	return next, found
}

// collectCandidates gathers expansion candidates against residual
// reference counts. The first non-empty stage wins:
//
//  1. dead inputs: external non-PI cell-fanins with no remaining external
//     users — absorbing one costs no boundary growth;
//  2. any external non-PI cell-fanin, plus the out-of-window parents of
//     window cells with 1..4 residual references. A cell with exactly one
//     residual reference and a single, external parent short-circuits the
//     scan: that parent replaces the whole candidate list.
//
// Frontier nodes observed along the way accumulate in inputs for the
// overlap heuristic.
func (b *Builder) collectCandidates(inputs map[core.Node]struct{}) []core.Node {
	var candidates []core.Node

	for _, n := range b.nodes.order {
		b.ntk.ForeachCellFanin(n, func(m core.Node) {
			if !b.nodes.has(m) && !b.ntk.IsPI(m) && b.cellRefs[m] == 0 {
				candidates = append(candidates, m)
				inputs[m] = struct{}{}
			}
		})
	}
	if len(candidates) > 0 {
		return candidates
	}

	for _, n := range b.nodes.order {
		b.ntk.ForeachCellFanin(n, func(m core.Node) {
			if !b.nodes.has(m) && !b.ntk.IsPI(m) {
				candidates = append(candidates, m)
				inputs[m] = struct{}{}
			}
		})
	}

	for _, n := range b.nodes.order {
		refs := b.cellRefs[n]
		if refs == 0 || refs >= 5 {
			continue
		}
		parents := b.cellParents[n]
		if refs == 1 && len(parents) == 1 && !b.nodes.has(parents[0]) {
			return []core.Node{parents[0]}
		}
		for _, p := range parents {
			if !b.nodes.has(p) {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}

// bestCandidate returns the candidate whose cell fanin overlaps the
// frontier inputs the most, ties broken by first occurrence.
func (b *Builder) bestCandidate(candidates []core.Node, inputs map[core.Node]struct{}) core.Node {
	best := candidates[0]
	bestCnt := -1
	for _, cand := range candidates {
		cnt := 0
		b.ntk.ForeachCellFanin(cand, func(m core.Node) {
			if _, ok := inputs[m]; ok {
				cnt++
			}
		})
		if cnt > bestCnt {
			best, bestCnt = cand, cnt
		}
	}
	return best
}

// findLeavesAndRoots recomputes the window boundary: leaves are gate
// fanins outside the gate set; roots are window cells still referenced
// from outside the window.
func (b *Builder) findLeavesAndRoots() {
	b.leaves.clear()
	for _, g := range b.gates.order {
		b.ntk.ForeachFanin(g, func(s core.Signal, _ int) {
			if child := s.Node(); !b.gates.has(child) {
				b.leaves.add(child)
			}
		})
	}

	b.roots.clear()
	b.withDerefed(func() {
		for _, n := range b.nodes.order {
			if b.cellRefs[n] > 0 {
				b.roots.add(n)
			}
		}
	})
}
