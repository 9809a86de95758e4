package indexlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlogic/core"
)

// packed header word limits shared by XAGList and MIGList.
const (
	maxHeaderPIs   = 0xff
	maxHeaderPOs   = 0xff
	maxHeaderGates = 0xffff
)

// packHeader assembles gates<<16 | pos<<8 | pis.
func packHeader(gates, pos, pis int) uint32 {
	return uint32(gates)<<16 | uint32(pos)<<8 | uint32(pis)
}

// XAGList is an AND/XOR index list with a packed header word
// (gates<<16 | POs<<8 | PIs) followed by gate literal pairs and single
// output literals. Pair order discriminates polarity: lit0 < lit1 is an
// AND, lit0 > lit1 an XOR.
type XAGList struct {
	values []uint32
}

// NewXAGList returns an empty list with numPIs inputs.
// At most 255 inputs fit the header.
func NewXAGList(numPIs int) (*XAGList, error) {
	if numPIs > maxHeaderPIs {
		return nil, fmt.Errorf("%w: %d inputs", ErrHeaderOverflow, numPIs)
	}
	return &XAGList{values: []uint32{uint32(numPIs)}}, nil
}

// XAGFromRaw adopts an existing value sequence, validating the size law
// 1 + 2·gates + POs, pairwise distinct gate literals, and topological
// literal bounds.
func XAGFromRaw(values []uint32) (*XAGList, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedList)
	}
	l := &XAGList{values: make([]uint32, len(values))}
	copy(l.values, values)

	gates, pos, pis := l.NumGates(), l.NumPOs(), l.NumPIs()
	if len(values) != 1+2*gates+pos {
		return nil, fmt.Errorf("%w: size %d does not match header (%d gates, %d outputs)",
			ErrMalformedList, len(values), gates, pos)
	}
	for g := 0; g < gates; g++ {
		v0, v1 := values[1+2*g], values[2+2*g]
		if v0 == v1 {
			return nil, fmt.Errorf("%w: gate %d has equal literals %d", ErrMalformedList, g, v0)
		}
		limit := uint32(pis + g)
		if v0>>1 > limit || v1>>1 > limit {
			return nil, fmt.Errorf("%w: gate %d", ErrNotTopological, g)
		}
	}
	limit := uint32(pis + gates)
	for i := len(values) - pos; i < len(values); i++ {
		if values[i]>>1 > limit {
			return nil, fmt.Errorf("%w: output literal %d out of range", ErrMalformedList, values[i])
		}
	}
	return l, nil
}

// Raw returns a copy of the stored value sequence.
func (l *XAGList) Raw() []uint32 {
	out := make([]uint32, len(l.values))
	copy(out, l.values)
	return out
}

// Size returns the element count.
func (l *XAGList) Size() int { return len(l.values) }

// NumGates returns the gate count from the header.
func (l *XAGList) NumGates() int { return int(l.values[0] >> 16) }

// NumPIs returns the input count from the header.
func (l *XAGList) NumPIs() int { return int(l.values[0] & 0xff) }

// NumPOs returns the output count from the header.
func (l *XAGList) NumPOs() int { return int(l.values[0] >> 8 & 0xff) }

// AddInputs grows the input count by n.
func (l *XAGList) AddInputs(n int) error {
	if l.NumPIs()+n > maxHeaderPIs {
		return fmt.Errorf("%w: %d inputs", ErrHeaderOverflow, l.NumPIs()+n)
	}
	l.values[0] += uint32(n)
	return nil
}

// AddAnd appends an AND gate entry; lit0 must be smaller than lit1.
func (l *XAGList) AddAnd(lit0, lit1 uint32) error {
	if lit0 >= lit1 {
		return fmt.Errorf("%w: and(%d, %d)", ErrLiteralOrder, lit0, lit1)
	}
	return l.addGate(lit0, lit1)
}

// AddXor appends an XOR gate entry; lit0 must be greater than lit1.
func (l *XAGList) AddXor(lit0, lit1 uint32) error {
	if lit0 <= lit1 {
		return fmt.Errorf("%w: xor(%d, %d)", ErrLiteralOrder, lit0, lit1)
	}
	return l.addGate(lit0, lit1)
}

func (l *XAGList) addGate(lit0, lit1 uint32) error {
	if l.NumGates()+1 > maxHeaderGates {
		return fmt.Errorf("%w: %d gates", ErrHeaderOverflow, l.NumGates()+1)
	}
	l.values[0] = packHeader(l.NumGates()+1, l.NumPOs(), l.NumPIs())
	l.values = append(l.values, lit0, lit1)
	return nil
}

// AddOutput appends an output literal.
func (l *XAGList) AddOutput(lit uint32) error {
	if l.NumPOs()+1 > maxHeaderPOs {
		return fmt.Errorf("%w: %d outputs", ErrHeaderOverflow, l.NumPOs()+1)
	}
	l.values[0] = packHeader(l.NumGates(), l.NumPOs()+1, l.NumPIs())
	l.values = append(l.values, lit)
	return nil
}

// ForeachEntry enumerates gate entries in emission order.
func (l *XAGList) ForeachEntry(fn func(lit0, lit1 uint32)) {
	for i := 1; i < len(l.values)-l.NumPOs(); i += 2 {
		fn(l.values[i], l.values[i+1])
	}
}

// ForeachPO enumerates output literals in emission order.
func (l *XAGList) ForeachPO(fn func(lit uint32)) {
	for i := len(l.values) - l.NumPOs(); i < len(l.values); i++ {
		fn(l.values[i])
	}
}

// String renders the list with the header spelled out for inspection:
// {pis | pos << 8 | gates << 16, v1, v2, …}.
func (l *XAGList) String() string {
	return packedString(l.NumPIs(), l.NumPOs(), l.NumGates(), l.values[1:])
}

// packedString renders a packed list's body after its decomposed header.
func packedString(pis, pos, gates int, body []uint32) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{%d | %d << 8 | %d << 16", pis, pos, gates)
	for _, v := range body {
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

// EncodeXAG appends ntk to dst. The network must be in normalised index
// order and consist of AND and XOR gates.
func EncodeXAG(dst *XAGList, ntk core.ANDXORNetwork) error {
	var arityErr error
	addInputs := func(n int) {
		if err := dst.AddInputs(n); err != nil && arityErr == nil {
			arityErr = err
		}
	}
	addOutput := func(lit uint32) {
		if err := dst.AddOutput(lit); err != nil && arityErr == nil {
			arityErr = err
		}
	}
	if err := encodeANDXOR(ntk, addInputs, dst.AddAnd, dst.AddXor, addOutput); err != nil {
		return err
	}
	if arityErr != nil {
		return arityErr
	}
	if dst.Size() != 1+2*ntk.NumGates()+ntk.NumPOs() {
		return fmt.Errorf("%w: encoded size mismatch", ErrMalformedList)
	}
	return nil
}

// InsertXAG resolves the list against inputs and creates its gates in b,
// delivering each output signal through emit.
func InsertXAG(b core.ANDXORBuilder, inputs []core.Signal, l *XAGList, emit func(core.Signal)) error {
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
		s0, err := resolveWith(b.CreateNot, signals, lit0)
		if err != nil {
			insErr = err
			return
		}
		s1, err := resolveWith(b.CreateNot, signals, lit1)
		if err != nil {
			insErr = err
			return
		}
		if lit0 > lit1 {
			signals = append(signals, b.CreateXor(s0, s1))
		} else {
			signals = append(signals, b.CreateAnd(s0, s1))
		}
	})
	if insErr != nil {
		return insErr
	}

	l.ForeachPO(func(lit uint32) {
		if insErr != nil {
			return
		}
		s, err := resolveWith(b.CreateNot, signals, lit)
		if err != nil {
			insErr = err
			return
		}
		emit(s)
	})
	return insErr
}

// DecodeXAG rebuilds the list as a standalone network in b.
func DecodeXAG(b core.ANDXORBuilder, l *XAGList) error {
	inputs, err := createPIs(b, l.NumPIs())
	if err != nil {
		return err
	}
	return InsertXAG(b, inputs, l, func(s core.Signal) { b.CreatePO(s) })
}

// resolveWith maps lit onto the signal table, routing complements through
// the host's inverter constructor.
func resolveWith(not func(core.Signal) core.Signal, signals []core.Signal, lit uint32) (core.Signal, error) {
	i := int(lit >> 1)
	if i >= len(signals) {
		return 0, fmt.Errorf("%w: literal %d out of range", ErrMalformedList, lit)
	}
	if lit&1 == 1 {
		return not(signals[i]), nil
	}
	return signals[i], nil
}
