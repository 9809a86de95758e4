// Package window types and options: sentinel errors, functional Options,
// and the insertion-ordered node set backing the window's state.
package window

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlogic/core"
)

var (
	// ErrNilNetwork is returned when a nil network is passed to NewBuilder.
	ErrNilNetwork = errors.New("window: network is nil")

	// ErrNotCellRoot indicates the requested pivot is not a cell root.
	ErrNotCellRoot = errors.New("window: pivot is not a cell root")

	// ErrPivotTooLarge indicates the pivot's own MFFC already exceeds the
	// gate budget, so no window can be built around it.
	ErrPivotTooLarge = errors.New("window: pivot MFFC exceeds gate budget")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("window: invalid option")
)

// DefaultMaxGates is the gate budget used when WithMaxGates is not given.
const DefaultMaxGates = 128

// Option configures optional behavior of a Builder.
// Use with NewBuilder(ntk, opts...).
type Option func(*Options)

// Options holds configurable parameters for window construction.
type Options struct {
	// MaxGates caps the number of gates a window may cover. Must be
	// positive. Default DefaultMaxGates.
	MaxGates int

	// Logger receives debug-level growth tracing. Defaults to a no-op
	// logger; install one to watch pivots being absorbed.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Options with the default gate budget and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxGates: DefaultMaxGates,
		Logger:   zerolog.Nop(),
	}
}

// WithMaxGates returns an Option setting the window gate budget.
// Non-positive values surface ErrOptionViolation from NewBuilder.
func WithMaxGates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxGates = n
	}
}

// WithLogger returns an Option installing l as the growth-trace logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// nodeSet is an insertion-ordered node set: membership is O(1) and
// iteration follows first-insertion order, which keeps candidate scans
// and tie-breaks deterministic under Go's randomized map iteration.
type nodeSet struct {
	order   []core.Node
	members map[core.Node]struct{}
}

func newNodeSet(capacity int) *nodeSet {
	return &nodeSet{
		order:   make([]core.Node, 0, capacity),
		members: make(map[core.Node]struct{}, capacity),
	}
}

// add inserts n, reporting whether it was absent.
func (s *nodeSet) add(n core.Node) bool {
	if _, ok := s.members[n]; ok {
		return false
	}
	s.members[n] = struct{}{}
	s.order = append(s.order, n)
	return true
}

func (s *nodeSet) has(n core.Node) bool {
	_, ok := s.members[n]
	return ok
}

func (s *nodeSet) len() int { return len(s.order) }

func (s *nodeSet) clear() {
	s.order = s.order[:0]
	for n := range s.members {
		delete(s.members, n)
	}
}

// slice returns a copy of the set in insertion order.
func (s *nodeSet) slice() []core.Node {
	out := make([]core.Node, len(s.order))
	copy(out, s.order)
	return out
}
