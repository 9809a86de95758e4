package window_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/window"
)

// WindowSuite exercises window construction on hand-built mapped hosts.
type WindowSuite struct {
	suite.Suite
}

// singleCell builds one cell rooted at p over PIs a, b, with p driving a PO.
//
//	a   b
//	 \ /
//	  p ──▶ PO
func singleCell(t require.TestingT) (*core.Mapped, core.Node) {
	m := core.NewMapped(2)
	p := m.CreateGate(core.NewSignal(1, false), core.NewSignal(2, false))
	m.CreatePO(p)
	require.NoError(t, m.SetCell(p.Node(), []core.Node{1, 2}))
	return m, p.Node()
}

// twoCells builds two cells, the first covering an internal gate:
//
//	a  b  c          cell X: root 5, gates {4, 5}, cell fanin {a, b, c}
//	 \ |   \         cell Y: root 6, gates {6},    cell fanin {5, a}
//	  (4)   \
//	    \   /
//	     (5)   a
//	       \  /
//	       (6) ──▶ PO
func twoCells(t require.TestingT) *core.Mapped {
	m := core.NewMapped(3)
	a := core.NewSignal(1, false)
	b := core.NewSignal(2, false)
	c := core.NewSignal(3, false)
	g4 := m.CreateGate(a, b)
	g5 := m.CreateGate(g4, c)
	g6 := m.CreateGate(g5, a)
	m.CreatePO(g6)
	require.NoError(t, m.SetCell(g5.Node(), []core.Node{1, 2, 3}))
	require.NoError(t, m.SetCell(g6.Node(), []core.Node{g5.Node(), 1}))
	return m
}

// chain builds n single-gate cells in a line, fed by one PI, with a PO on
// the last cell.
func chain(t require.TestingT, n int) (*core.Mapped, core.Node) {
	m := core.NewMapped(1)
	prev := core.NewSignal(1, false)
	for i := 0; i < n; i++ {
		g := m.CreateGate(prev)
		require.NoError(t, m.SetCell(g.Node(), []core.Node{prev.Node()}))
		prev = g
	}
	m.CreatePO(prev)
	return m, prev.Node()
}

// TestSingleCellLeaves pins the minimal window: nodes {p}, leaves {a, b},
// roots {p}.
func (s *WindowSuite) TestSingleCellLeaves() {
	m, p := singleCell(s.T())
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)

	require.NoError(s.T(), b.ComputeWindowFor(p))
	require.Equal(s.T(), []core.Node{p}, b.Nodes())
	require.ElementsMatch(s.T(), []core.Node{1, 2}, b.Leaves())
	require.Equal(s.T(), []core.Node{p}, b.Roots())
	require.Equal(s.T(), 2, b.NumPIs())
	require.Equal(s.T(), 1, b.NumPOs())
	require.Equal(s.T(), 1, b.NumGates())
	require.Equal(s.T(), 1, b.NumCells())
	// one constant node + two leaves + one gate
	require.Equal(s.T(), 4, b.Size())
}

// TestMFFCCoversInternalGates verifies that absorbing a cell pulls its
// whole cell-bounded MFFC into the gate set.
func (s *WindowSuite) TestMFFCCoversInternalGates() {
	m := twoCells(s.T())
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)

	require.NoError(s.T(), b.ComputeWindowFor(5))
	require.ElementsMatch(s.T(), []core.Node{5, 6}, b.Nodes())
	require.ElementsMatch(s.T(), []core.Node{4, 5, 6}, b.Gates())
	require.ElementsMatch(s.T(), []core.Node{1, 2, 3}, b.Leaves())
	require.Equal(s.T(), []core.Node{6}, b.Roots())
}

// TestDeadInputAbsorbed verifies the dead-input branch: starting from the
// downstream cell, its only external fanin has no other users and is
// absorbed without boundary growth.
func (s *WindowSuite) TestDeadInputAbsorbed() {
	m := twoCells(s.T())
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)

	require.NoError(s.T(), b.ComputeWindowFor(6))
	require.ElementsMatch(s.T(), []core.Node{5, 6}, b.Nodes())
	require.ElementsMatch(s.T(), []core.Node{4, 5, 6}, b.Gates())
	require.ElementsMatch(s.T(), []core.Node{1, 2, 3}, b.Leaves())
	require.Equal(s.T(), []core.Node{6}, b.Roots())
}

// TestParentExpansion verifies the parent-scan branch: a window cell with
// two external parents pulls both in over successive growth steps.
//
//	    a
//	    |
//	   (r)
//	   / \
//	(p1) (p2)   both drive POs
func (s *WindowSuite) TestParentExpansion() {
	m := core.NewMapped(1)
	a := core.NewSignal(1, false)
	r := m.CreateGate(a)
	p1 := m.CreateGate(r)
	p2 := m.CreateGate(r)
	m.CreatePO(p1)
	m.CreatePO(p2)
	require.NoError(s.T(), m.SetCell(r.Node(), []core.Node{1}))
	require.NoError(s.T(), m.SetCell(p1.Node(), []core.Node{r.Node()}))
	require.NoError(s.T(), m.SetCell(p2.Node(), []core.Node{r.Node()}))

	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.ComputeWindowFor(r.Node()))

	require.ElementsMatch(s.T(), []core.Node{r.Node(), p1.Node(), p2.Node()}, b.Nodes())
	require.ElementsMatch(s.T(), []core.Node{p1.Node(), p2.Node()}, b.Roots())
	require.Equal(s.T(), []core.Node{1}, b.Leaves())
}

// TestSingleParentShortcut verifies that a cell referenced exactly once,
// by a single outside parent, hands the window straight to that parent.
func (s *WindowSuite) TestSingleParentShortcut() {
	m, _ := chain(s.T(), 3)
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)

	// start at the head cell; its only user is the middle cell
	require.NoError(s.T(), b.ComputeWindowFor(2))
	require.ElementsMatch(s.T(), []core.Node{2, 3, 4}, b.Nodes())
	require.Equal(s.T(), []core.Node{1}, b.Leaves())
	require.Equal(s.T(), []core.Node{4}, b.Roots())
}

// TestChainCap bounds growth on a long chain: 200 cells, budget 128.
func (s *WindowSuite) TestChainCap() {
	m, tail := chain(s.T(), 200)
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)

	require.NoError(s.T(), b.ComputeWindowFor(tail))
	require.LessOrEqual(s.T(), b.NumGates(), window.DefaultMaxGates)
	require.Equal(s.T(), window.DefaultMaxGates, b.NumGates())
	require.NotEmpty(s.T(), b.Leaves())
	require.NotEmpty(s.T(), b.Roots())
	require.Equal(s.T(), []core.Node{tail}, b.Roots())
}

// TestBoundaryClosure checks that the boundary is closed: every gate fanin is
// inside the gate set or recorded as a leaf, and roots are window cells.
func (s *WindowSuite) TestBoundaryClosure() {
	m := twoCells(s.T())
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.ComputeWindowFor(5))

	inGates := make(map[core.Node]bool)
	for _, g := range b.Gates() {
		inGates[g] = true
	}
	inLeaves := make(map[core.Node]bool)
	for _, l := range b.Leaves() {
		inLeaves[l] = true
	}
	for _, g := range b.Gates() {
		m.ForeachFanin(g, func(f core.Signal, _ int) {
			child := f.Node()
			require.True(s.T(), inGates[child] || inLeaves[child],
				"fanin %d of gate %d escapes the window boundary", child, g)
		})
	}

	inNodes := make(map[core.Node]bool)
	for _, n := range b.Nodes() {
		inNodes[n] = true
	}
	for _, r := range b.Roots() {
		require.True(s.T(), inNodes[r])
	}
}

// TestCellRefsRestored checks that reference counts are bit-identical to
// their post-construction values after every operation.
func (s *WindowSuite) TestCellRefsRestored() {
	m := twoCells(s.T())
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)

	initial := b.CellRefs()
	require.NoError(s.T(), b.ComputeWindowFor(5))
	require.Equal(s.T(), initial, b.CellRefs())
	require.NoError(s.T(), b.ComputeWindowFor(6))
	require.Equal(s.T(), initial, b.CellRefs())

	// windows are recomputed from scratch, so results stay stable
	require.NoError(s.T(), b.ComputeWindowFor(5))
	require.ElementsMatch(s.T(), []core.Node{4, 5, 6}, b.Gates())
}

// TestRootHasExternalUser checks that each root of a grown window is
// referenced by a PO or by a cell outside the window.
func (s *WindowSuite) TestRootHasExternalUser() {
	m := twoCells(s.T())
	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.ComputeWindowFor(5))

	inNodes := make(map[core.Node]bool)
	for _, n := range b.Nodes() {
		inNodes[n] = true
	}
	for _, r := range b.Roots() {
		external := false
		m.ForeachPO(func(po core.Signal, _ int) {
			if po.Node() == r {
				external = true
			}
		})
		m.ForeachGate(func(n core.Node, _ int) {
			if !m.IsCellRoot(n) || inNodes[n] {
				return
			}
			m.ForeachCellFanin(n, func(f core.Node) {
				if f == r {
					external = true
				}
			})
		})
		require.True(s.T(), external, "root %d has no external user", r)
	}
}

// TestErrors covers construction and pivot precondition failures.
func (s *WindowSuite) TestErrors() {
	_, err := window.NewBuilder(nil)
	require.ErrorIs(s.T(), err, window.ErrNilNetwork)

	m, p := singleCell(s.T())
	_, err = window.NewBuilder(m, window.WithMaxGates(0))
	require.ErrorIs(s.T(), err, window.ErrOptionViolation)

	b, err := window.NewBuilder(m)
	require.NoError(s.T(), err)
	// PI 1 is not a cell root
	require.ErrorIs(s.T(), b.ComputeWindowFor(1), window.ErrNotCellRoot)
	_ = p
}

// TestPivotTooLarge rejects a pivot whose own MFFC exceeds the budget.
func (s *WindowSuite) TestPivotTooLarge() {
	m := twoCells(s.T())
	// cell X covers gates {4, 5}, over a budget of 1
	b, err := window.NewBuilder(m, window.WithMaxGates(1))
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), b.ComputeWindowFor(5), window.ErrPivotTooLarge)
}

// TestBudgetStopsGrowth keeps the seed window when no neighbour fits.
func (s *WindowSuite) TestBudgetStopsGrowth() {
	m := twoCells(s.T())
	b, err := window.NewBuilder(m, window.WithMaxGates(2))
	require.NoError(s.T(), err)

	// the seed MFFC {4, 5} fills the budget; cell Y cannot join
	require.NoError(s.T(), b.ComputeWindowFor(5))
	require.Equal(s.T(), []core.Node{5}, b.Nodes())
	require.ElementsMatch(s.T(), []core.Node{4, 5}, b.Gates())
	require.ElementsMatch(s.T(), []core.Node{1, 2, 3}, b.Leaves())
	require.Equal(s.T(), []core.Node{5}, b.Roots())
}

// TestGrowthTracing checks that an installed logger observes window
// growth at debug level.
func (s *WindowSuite) TestGrowthTracing() {
	m := twoCells(s.T())

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	b, err := window.NewBuilder(m, window.WithLogger(logger))
	require.NoError(s.T(), err)

	require.NoError(s.T(), b.ComputeWindowFor(5))
	require.Contains(s.T(), buf.String(), "window: absorbed cell")
	require.Contains(s.T(), buf.String(), "window: computed")
}

func TestWindowSuite(t *testing.T) {
	suite.Run(t, new(WindowSuite))
}
