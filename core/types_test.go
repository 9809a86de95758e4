package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlogic/core"
)

// TestSignalPacking verifies the literal encoding node<<1 | complement.
func TestSignalPacking(t *testing.T) {
	s := core.NewSignal(7, false)
	require.Equal(t, core.Node(7), s.Node())
	require.False(t, s.Complemented())
	require.Equal(t, core.Signal(14), s)

	c := core.NewSignal(7, true)
	require.Equal(t, core.Node(7), c.Node())
	require.True(t, c.Complemented())
	require.Equal(t, core.Signal(15), c)
}

// TestSignalNot verifies complement involution and conditional complement.
func TestSignalNot(t *testing.T) {
	s := core.NewSignal(3, false)
	require.Equal(t, core.NewSignal(3, true), s.Not())
	require.Equal(t, s, s.Not().Not())
	require.Equal(t, s, s.NotIf(false))
	require.Equal(t, s.Not(), s.NotIf(true))
}

// TestConstantSignals pins literal 0 to constant false and literal 1 to
// constant true, both selecting the reserved node 0.
func TestConstantSignals(t *testing.T) {
	x := core.NewXAG()
	f := x.Constant(false)
	tr := x.Constant(true)
	require.Equal(t, core.Signal(0), f)
	require.Equal(t, core.Signal(1), tr)
	require.Equal(t, core.ConstantNode, f.Node())
	require.Equal(t, core.ConstantNode, tr.Node())
	require.Equal(t, f, tr.Not())
}
