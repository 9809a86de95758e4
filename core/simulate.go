package core

import "fmt"

// MaxSimPIs bounds truth-table simulation. 2^16 assignments is plenty for
// the small networks index lists and windows describe.
const MaxSimPIs = 16

// TruthTable is a bit-parallel simulation vector: bit a holds the value
// of the simulated function under input assignment a, where input k takes
// the value (a>>k)&1.
type TruthTable []uint64

// Bit returns the table value under assignment a.
func (t TruthTable) Bit(a int) bool {
	return t[a>>6]>>(uint(a)&63)&1 == 1
}

// projections of the first six variables within a 64-bit word.
var varMasks = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000,
}

// tableWords returns the word count of a table over numPIs inputs.
func tableWords(numPIs int) int {
	if numPIs <= 6 {
		return 1
	}
	return 1 << (numPIs - 6)
}

// lastWordMask masks off the unused high bits of a one-word table.
func lastWordMask(numPIs int) uint64 {
	if numPIs >= 6 {
		return ^uint64(0)
	}
	return 1<<(1<<numPIs) - 1
}

// variableTable returns the projection table of input k over numPIs inputs.
func variableTable(numPIs, k int) TruthTable {
	t := make(TruthTable, tableWords(numPIs))
	if k < 6 {
		m := varMasks[k] & lastWordMask(numPIs)
		for i := range t {
			t[i] = m
		}
		return t
	}
	for i := range t {
		if i>>(k-6)&1 == 1 {
			t[i] = ^uint64(0)
		}
	}
	return t
}

// simTables evaluates every node of ntk bottom-up, combining fanin tables
// with eval, and returns one table per node index.
func simTables(ntk Network, eval func(gate Node, fanins []TruthTable) TruthTable) ([]TruthTable, error) {
	numPIs := ntk.NumPIs()
	if numPIs > MaxSimPIs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPIs, numPIs, MaxSimPIs)
	}
	tabs := make([]TruthTable, ntk.Size())
	tabs[ConstantNode] = make(TruthTable, tableWords(numPIs))
	ntk.ForeachPI(func(n Node, i int) {
		tabs[n] = variableTable(numPIs, i)
	})
	ntk.ForeachGate(func(n Node, _ int) {
		var fanins []TruthTable
		ntk.ForeachFanin(n, func(s Signal, _ int) {
			fanins = append(fanins, resolve(tabs, s, numPIs))
		})
		tabs[n] = eval(n, fanins)
	})
	return tabs, nil
}

// resolve reads the table of s, complementing when the low bit is set.
func resolve(tabs []TruthTable, s Signal, numPIs int) TruthTable {
	t := tabs[s.Node()]
	if !s.Complemented() {
		return t
	}
	out := make(TruthTable, len(t))
	for i := range t {
		out[i] = ^t[i]
	}
	out[len(out)-1] &= lastWordMask(numPIs)
	return out
}

// poTables projects the per-node tables onto the network's outputs.
func poTables(ntk Network, tabs []TruthTable) []TruthTable {
	out := make([]TruthTable, 0, ntk.NumPOs())
	ntk.ForeachPO(func(s Signal, _ int) {
		out = append(out, resolve(tabs, s, ntk.NumPIs()))
	})
	return out
}

// SimulateXAG computes one truth table per primary output of x.
func SimulateXAG(x *XAG) ([]TruthTable, error) {
	tabs, err := simTables(x, func(n Node, fi []TruthTable) TruthTable {
		t := make(TruthTable, len(fi[0]))
		for i := range t {
			if x.IsAnd(n) {
				t[i] = fi[0][i] & fi[1][i]
			} else {
				t[i] = fi[0][i] ^ fi[1][i]
			}
		}
		return t
	})
	if err != nil {
		return nil, err
	}
	return poTables(x, tabs), nil
}

// SimulateMIG computes one truth table per primary output of m.
func SimulateMIG(m *MIG) ([]TruthTable, error) {
	tabs, err := simTables(m, func(_ Node, fi []TruthTable) TruthTable {
		t := make(TruthTable, len(fi[0]))
		for i := range t {
			a, b, c := fi[0][i], fi[1][i], fi[2][i]
			t[i] = a&b | a&c | b&c
		}
		return t
	})
	if err != nil {
		return nil, err
	}
	return poTables(m, tabs), nil
}
