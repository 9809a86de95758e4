package indexlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvlogic/core"
)

// ABCList is an AND/XOR index list in the external tool's convention.
//
// Layout: {0, 1, (0,0)×PIs, (lit0,lit1)×gates, (lit,lit)×POs}. Gate
// polarity is positional (lit0 < lit1 ⇒ AND, lit0 > lit1 ⇒ XOR) and
// output entries repeat their literal, so the whole list is recoverable
// by scanning.
type ABCList struct {
	numPIs int
	numPOs int
	values []uint32
}

// NewABCList returns an empty list with numPIs inputs.
func NewABCList(numPIs int) *ABCList {
	l := &ABCList{values: []uint32{0, 1}}
	if numPIs > 0 {
		l.AddInputs(numPIs)
	}
	return l
}

// ABCFromRaw adopts an existing value sequence, recovering the input and
// output counts by scanning and validating the structure: the two-constant
// prefix, pairwise layout, a contiguous output suffix, and topological
// gate literals.
func ABCFromRaw(values []uint32) (*ABCList, error) {
	if len(values) < 2 || values[0] != 0 || values[1] != 1 {
		return nil, fmt.Errorf("%w: missing constant prefix", ErrMalformedList)
	}
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: odd element count %d", ErrMalformedList, len(values))
	}

	l := &ABCList{values: make([]uint32, len(values))}
	copy(l.values, values)

	// leading (0,0) pairs count inputs
	i := 2
	for ; i+1 < len(values); i += 2 {
		if values[i] != 0 || values[i+1] != 0 {
			break
		}
		l.numPIs++
	}

	// gate pairs, then a contiguous suffix of equal-literal output markers
	gate := 0
	inPOs := false
	for ; i+1 < len(values); i += 2 {
		v0, v1 := values[i], values[i+1]
		if v0 == 0 && v1 == 0 {
			return nil, fmt.Errorf("%w: input pair at position %d", ErrMalformedList, i)
		}
		if v0 == v1 {
			inPOs = true
			l.numPOs++
			continue
		}
		if inPOs {
			return nil, fmt.Errorf("%w: gate pair at position %d after output marker", ErrMalformedList, i)
		}
		limit := uint32(l.numPIs + gate)
		if v0>>1 > limit || v1>>1 > limit {
			return nil, fmt.Errorf("%w: gate %d", ErrNotTopological, gate)
		}
		gate++
	}

	limit := uint32(l.numPIs + gate)
	var rangeErr error
	l.ForeachPO(func(lit uint32) {
		if lit>>1 > limit && rangeErr == nil {
			rangeErr = fmt.Errorf("%w: output literal %d out of range", ErrMalformedList, lit)
		}
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return l, nil
}

// Raw returns a copy of the stored value sequence.
func (l *ABCList) Raw() []uint32 {
	out := make([]uint32, len(l.values))
	copy(out, l.values)
	return out
}

// Size returns the element count.
func (l *ABCList) Size() int { return len(l.values) }

// NumGates returns the number of gate entries.
func (l *ABCList) NumGates() int {
	return (len(l.values) - (1+l.numPIs+l.numPOs)<<1) >> 1
}

// NumPIs returns the number of inputs.
func (l *ABCList) NumPIs() int { return l.numPIs }

// NumPOs returns the number of outputs.
func (l *ABCList) NumPOs() int { return l.numPOs }

// AddInputs grows the input count by n.
func (l *ABCList) AddInputs(n int) {
	l.numPIs += n
	for i := 0; i < n; i++ {
		l.values = append(l.values, 0, 0)
	}
}

// AddAnd appends an AND gate entry; lit0 must be smaller than lit1.
func (l *ABCList) AddAnd(lit0, lit1 uint32) error {
	if lit0 >= lit1 {
		return fmt.Errorf("%w: and(%d, %d)", ErrLiteralOrder, lit0, lit1)
	}
	l.values = append(l.values, lit0, lit1)
	return nil
}

// AddXor appends an XOR gate entry; lit0 must be greater than lit1.
func (l *ABCList) AddXor(lit0, lit1 uint32) error {
	if lit0 <= lit1 {
		return fmt.Errorf("%w: xor(%d, %d)", ErrLiteralOrder, lit0, lit1)
	}
	l.values = append(l.values, lit0, lit1)
	return nil
}

// AddOutput appends an output marker for lit (stored as a repeated pair).
func (l *ABCList) AddOutput(lit uint32) {
	l.numPOs++
	l.values = append(l.values, lit, lit)
}

// ForeachEntry enumerates gate entries in emission order.
func (l *ABCList) ForeachEntry(fn func(lit0, lit1 uint32)) {
	for i := (1 + l.numPIs) << 1; i < len(l.values)-(l.numPOs<<1); i += 2 {
		fn(l.values[i], l.values[i+1])
	}
}

// ForeachPO enumerates output literals in emission order.
func (l *ABCList) ForeachPO(fn func(lit uint32)) {
	for i := len(l.values) - (l.numPOs << 1); i+1 < len(l.values); i += 2 {
		fn(l.values[i])
	}
}

// String renders the list as comma-separated decimals between braces.
func (l *ABCList) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range l.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

// EncodeABC appends ntk to dst. The network must be in normalised index
// order and consist of AND and XOR gates with fanin literals already in
// the polarity order the list requires.
func EncodeABC(dst *ABCList, ntk core.ANDXORNetwork) error {
	if err := encodeANDXOR(ntk, dst.AddInputs, dst.AddAnd, dst.AddXor, dst.AddOutput); err != nil {
		return err
	}
	if dst.Size() != (1+ntk.NumPIs()+ntk.NumGates()+ntk.NumPOs())<<1 {
		return fmt.Errorf("%w: encoded size mismatch", ErrMalformedList)
	}
	return nil
}

// InsertABC resolves the list against inputs and creates its gates in b,
// delivering each output signal through emit.
func InsertABC(b core.ANDXORBuilder, inputs []core.Signal, l *ABCList, emit func(core.Signal)) error {
	if len(inputs) != l.NumPIs() {
		return fmt.Errorf("%w: got %d, list has %d", ErrInputArity, len(inputs), l.NumPIs())
	}

	signals := make([]core.Signal, 0, 1+len(inputs)+l.NumGates())
	signals = append(signals, b.Constant(false))
	signals = append(signals, inputs...)

	var insErr error
	l.ForeachEntry(func(lit0, lit1 uint32) {
		if insErr != nil {
			return
		}
		if lit0 == lit1 {
			insErr = fmt.Errorf("%w: gate entry (%d, %d)", ErrMalformedList, lit0, lit1)
			return
		}
		s0, err := resolveLiteral(signals, lit0)
		if err != nil {
			insErr = err
			return
		}
		s1, err := resolveLiteral(signals, lit1)
		if err != nil {
			insErr = err
			return
		}
		if lit0 < lit1 {
			signals = append(signals, b.CreateAnd(s0, s1))
		} else {
			signals = append(signals, b.CreateXor(s0, s1))
		}
	})
	if insErr != nil {
		return insErr
	}

	l.ForeachPO(func(lit uint32) {
		if insErr != nil {
			return
		}
		s, err := resolveLiteral(signals, lit)
		if err != nil {
			insErr = err
			return
		}
		emit(s)
	})
	return insErr
}

// DecodeABC rebuilds the list as a standalone network in b: fresh PIs,
// the list's gates, then POs.
func DecodeABC(b core.ANDXORBuilder, l *ABCList) error {
	inputs, err := createPIs(b, l.NumPIs())
	if err != nil {
		return err
	}
	return InsertABC(b, inputs, l, func(s core.Signal) { b.CreatePO(s) })
}

// resolveLiteral maps lit onto the build-time signal table, complementing
// when the low bit is set.
func resolveLiteral(signals []core.Signal, lit uint32) (core.Signal, error) {
	i := int(lit >> 1)
	if i >= len(signals) {
		return 0, fmt.Errorf("%w: literal %d out of range", ErrMalformedList, lit)
	}
	return signals[i].NotIf(lit&1 == 1), nil
}

// encodeANDXOR drives the shared encode walk for the two AND/XOR list
// families, reporting structural violations on the diagnostic channel.
func encodeANDXOR(ntk core.ANDXORNetwork, addInputs func(int),
	addAnd, addXor func(uint32, uint32) error, addOutput func(uint32)) error {

	var encErr error
	fail := func(err error) {
		if encErr == nil {
			encErr = err
		}
	}

	ntk.ForeachPI(func(n core.Node, i int) {
		if int(n) != i+1 {
			log.Error().Int("pi", i+1).Msg("index list: network not in normalized index order")
			fail(fmt.Errorf("%w: violated by PI %d", ErrNotNormalized, i+1))
		}
	})
	if encErr != nil {
		return encErr
	}

	addInputs(ntk.NumPIs())

	ntk.ForeachGate(func(n core.Node, i int) {
		if encErr != nil {
			return
		}
		if !ntk.IsAnd(n) && !ntk.IsXor(n) {
			fail(fmt.Errorf("%w: node %d", ErrUnsupportedGate, n))
			return
		}
		if int(n) != ntk.NumPIs()+i+1 {
			log.Error().Uint32("node", uint32(n)).Msg("index list: network not in normalized index order")
			fail(fmt.Errorf("%w: violated by node %d", ErrNotNormalized, n))
			return
		}

		var lits [2]uint32
		ntk.ForeachFanin(n, func(s core.Signal, j int) {
			if s.Node() >= n {
				log.Error().Uint32("node", uint32(n)).Msg("index list: node not in topological order")
				fail(fmt.Errorf("%w: node %d", ErrNotTopological, n))
				return
			}
			lits[j] = uint32(s)
		})
		if encErr != nil {
			return
		}

		if ntk.IsAnd(n) {
			fail(addAnd(lits[0], lits[1]))
		} else {
			fail(addXor(lits[0], lits[1]))
		}
	})
	if encErr != nil {
		return encErr
	}

	ntk.ForeachPO(func(s core.Signal, _ int) {
		addOutput(uint32(s))
	})
	return nil
}

// createPIs allocates n fresh primary inputs in b.
func createPIs(b interface {
	CreatePI() (core.Signal, error)
}, n int) ([]core.Signal, error) {
	inputs := make([]core.Signal, 0, n)
	for i := 0; i < n; i++ {
		s, err := b.CreatePI()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, s)
	}
	return inputs, nil
}
