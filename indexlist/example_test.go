package indexlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/indexlist"
)

// ExampleEncodeXAG encodes (x1 AND x2) XOR (x3 AND x4) and prints the
// packed list with its header spelled out.
func ExampleEncodeXAG() {
	x := core.NewXAG()
	var pis [4]core.Signal
	for i := range pis {
		pis[i], _ = x.CreatePI()
	}
	a1 := x.CreateAnd(pis[0], pis[1])
	a2 := x.CreateAnd(pis[2], pis[3])
	x.CreatePO(x.CreateXor(a2, a1))

	l, err := indexlist.NewXAGList(0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := indexlist.EncodeXAG(l, x); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(l)
	// Output:
	// {4 | 1 << 8 | 3 << 16, 2, 4, 6, 8, 12, 10, 14}
}

// ExampleDecodeABC rebuilds a network from the external tool's list form.
func ExampleDecodeABC() {
	l, err := indexlist.ABCFromRaw([]uint32{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 2, 4, 6, 8, 12, 10, 14, 14})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x := core.NewXAG()
	if err := indexlist.DecodeABC(x, l); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("inputs: ", x.NumPIs())
	fmt.Println("gates:  ", x.NumGates())
	fmt.Println("outputs:", x.NumPOs())
	// Output:
	// inputs:  4
	// gates:   3
	// outputs: 1
}
