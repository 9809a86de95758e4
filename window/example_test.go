package window_test

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/window"
)

// ExampleBuilder_ComputeWindowFor grows a window over a two-cell host:
// cell 5 covers gates {4, 5} over PIs {a, b, c}; cell 6 reuses cell 5 and
// PI a and drives the only output.
func ExampleBuilder_ComputeWindowFor() {
	m := core.NewMapped(3)
	a := core.NewSignal(1, false)
	b := core.NewSignal(2, false)
	c := core.NewSignal(3, false)
	g4 := m.CreateGate(a, b)
	g5 := m.CreateGate(g4, c)
	g6 := m.CreateGate(g5, a)
	m.CreatePO(g6)
	_ = m.SetCell(g5.Node(), []core.Node{1, 2, 3})
	_ = m.SetCell(g6.Node(), []core.Node{g5.Node(), 1})

	builder, err := window.NewBuilder(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := builder.ComputeWindowFor(g5.Node()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells: ", builder.NumCells())
	fmt.Println("gates: ", builder.NumGates())
	fmt.Println("leaves:", builder.Leaves())
	fmt.Println("roots: ", builder.Roots())
	// Output:
	// cells:  2
	// gates:  3
	// leaves: [1 2 3]
	// roots:  [6]
}
