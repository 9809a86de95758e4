package indexlist

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvlogic/core"
)

// MIGList is a majority index list: a packed header word
// (gates<<16 | POs<<8 | PIs) followed by gate literal triples and single
// output literals. Every entry is a majority; there is no polarity
// discriminator.
type MIGList struct {
	values []uint32
}

// NewMIGList returns an empty list with numPIs inputs.
// At most 255 inputs fit the header.
func NewMIGList(numPIs int) (*MIGList, error) {
	if numPIs > maxHeaderPIs {
		return nil, fmt.Errorf("%w: %d inputs", ErrHeaderOverflow, numPIs)
	}
	return &MIGList{values: []uint32{uint32(numPIs)}}, nil
}

// MIGFromRaw adopts an existing value sequence, validating the size law
// 1 + 3·gates + POs and topological literal bounds.
func MIGFromRaw(values []uint32) (*MIGList, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedList)
	}
	l := &MIGList{values: make([]uint32, len(values))}
	copy(l.values, values)

	gates, pos, pis := l.NumGates(), l.NumPOs(), l.NumPIs()
	if len(values) != 1+3*gates+pos {
		return nil, fmt.Errorf("%w: size %d does not match header (%d gates, %d outputs)",
			ErrMalformedList, len(values), gates, pos)
	}
	for g := 0; g < gates; g++ {
		limit := uint32(pis + g)
		for j := 0; j < 3; j++ {
			if values[1+3*g+j]>>1 > limit {
				return nil, fmt.Errorf("%w: gate %d", ErrNotTopological, g)
			}
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
func (l *MIGList) Raw() []uint32 {
	out := make([]uint32, len(l.values))
	copy(out, l.values)
	return out
}

// Size returns the element count.
func (l *MIGList) Size() int { return len(l.values) }

// NumGates returns the gate count from the header.
func (l *MIGList) NumGates() int { return int(l.values[0] >> 16) }

// NumPIs returns the input count from the header.
func (l *MIGList) NumPIs() int { return int(l.values[0] & 0xff) }

// NumPOs returns the output count from the header.
func (l *MIGList) NumPOs() int { return int(l.values[0] >> 8 & 0xff) }

// AddInputs grows the input count by n.
func (l *MIGList) AddInputs(n int) error {
	if l.NumPIs()+n > maxHeaderPIs {
		return fmt.Errorf("%w: %d inputs", ErrHeaderOverflow, l.NumPIs()+n)
	}
	l.values[0] += uint32(n)
	return nil
}

// AddMaj appends a majority gate entry.
func (l *MIGList) AddMaj(lit0, lit1, lit2 uint32) error {
	if l.NumGates()+1 > maxHeaderGates {
		return fmt.Errorf("%w: %d gates", ErrHeaderOverflow, l.NumGates()+1)
	}
	l.values[0] = packHeader(l.NumGates()+1, l.NumPOs(), l.NumPIs())
	l.values = append(l.values, lit0, lit1, lit2)
	return nil
}

// AddOutput appends an output literal.
func (l *MIGList) AddOutput(lit uint32) error {
	if l.NumPOs()+1 > maxHeaderPOs {
		return fmt.Errorf("%w: %d outputs", ErrHeaderOverflow, l.NumPOs()+1)
	}
	l.values[0] = packHeader(l.NumGates(), l.NumPOs()+1, l.NumPIs())
	l.values = append(l.values, lit)
	return nil
}

// ForeachEntry enumerates gate triples in emission order.
func (l *MIGList) ForeachEntry(fn func(lit0, lit1, lit2 uint32)) {
	for i := 1; i < len(l.values)-l.NumPOs(); i += 3 {
		fn(l.values[i], l.values[i+1], l.values[i+2])
	}
}

// ForeachPO enumerates output literals in emission order.
func (l *MIGList) ForeachPO(fn func(lit uint32)) {
	for i := len(l.values) - l.NumPOs(); i < len(l.values); i++ {
		fn(l.values[i])
	}
}

// String renders the list with the header spelled out for inspection.
func (l *MIGList) String() string {
	return packedString(l.NumPIs(), l.NumPOs(), l.NumGates(), l.values[1:])
}

// EncodeMIG appends ntk to dst. The network must be in normalised index
// order and consist of majority gates.
func EncodeMIG(dst *MIGList, ntk core.MajorityNetwork) error {
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

	fail(dst.AddInputs(ntk.NumPIs()))

	ntk.ForeachGate(func(n core.Node, i int) {
		if encErr != nil {
			return
		}
		if !ntk.IsMaj(n) {
			fail(fmt.Errorf("%w: node %d", ErrUnsupportedGate, n))
			return
		}
		if int(n) != ntk.NumPIs()+i+1 {
			log.Error().Uint32("node", uint32(n)).Msg("index list: network not in normalized index order")
			fail(fmt.Errorf("%w: violated by node %d", ErrNotNormalized, n))
			return
		}

		var lits [3]uint32
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
		fail(dst.AddMaj(lits[0], lits[1], lits[2]))
	})
	if encErr != nil {
		return encErr
	}

	ntk.ForeachPO(func(s core.Signal, _ int) {
		fail(dst.AddOutput(uint32(s)))
	})
	if encErr != nil {
		return encErr
	}

	if dst.Size() != 1+3*ntk.NumGates()+ntk.NumPOs() {
		return fmt.Errorf("%w: encoded size mismatch", ErrMalformedList)
	}
	return nil
}

// InsertMIG resolves the list against inputs and creates its gates in b,
// delivering each output signal through emit.
func InsertMIG(b core.MajorityBuilder, inputs []core.Signal, l *MIGList, emit func(core.Signal)) error {
	if len(inputs) != l.NumPIs() {
		return fmt.Errorf("%w: got %d, list has %d", ErrInputArity, len(inputs), l.NumPIs())
	}

	signals := make([]core.Signal, 0, 1+len(inputs)+l.NumGates())
	signals = append(signals, b.Constant(false))
	signals = append(signals, inputs...)

	var insErr error
	l.ForeachEntry(func(lit0, lit1, lit2 uint32) {
		if insErr != nil {
			return
		}
		var fanin [3]core.Signal
		for j, lit := range [3]uint32{lit0, lit1, lit2} {
			s, err := resolveWith(b.CreateNot, signals, lit)
			if err != nil {
				insErr = err
				return
			}
			fanin[j] = s
		}
		signals = append(signals, b.CreateMaj(fanin[0], fanin[1], fanin[2]))
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

// DecodeMIG rebuilds the list as a standalone network in b.
func DecodeMIG(b core.MajorityBuilder, l *MIGList) error {
	inputs, err := createPIs(b, l.NumPIs())
	if err != nil {
		return err
	}
	return InsertMIG(b, inputs, l, func(s core.Signal) { b.CreatePO(s) })
}
