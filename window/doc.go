// Package window grows bounded cell windows around a pivot in a
// technology-mapped logic network, the unit of work for local
// resynthesis.
//
// A window is described by four node sets:
//
//	Nodes  — cell roots absorbed into the window
//	Gates  — every gate covered by those cells' MFFCs
//	Leaves — nodes feeding Gates from outside (PIs and external gates)
//	Roots  — window cells whose fanout escapes the window
//
// # Algorithm
//
// NewBuilder walks the network once to count, per node, the cell-level
// references from cell roots and primary outputs (cellRefs) and to record
// each node's parent cells (cellParents). ComputeWindowFor then seeds the
// window with the pivot's MFFC and repeatedly absorbs the most promising
// neighbouring cell until no candidate remains or the next MFFC would
// push the gate count past MaxGates.
//
// Candidate selection temporarily removes the window's own references
// from cellRefs, leaving residual counts of external users only. Dead
// inputs (residual zero) are absorbed first; otherwise external inputs
// and low-fanout parents compete, and the candidate sharing the most
// frontier inputs wins, ties broken by first occurrence. The decrements
// are always rebalanced before returning: cellRefs is bit-identical to
// its post-construction state after every public operation.
//
// All window sets are insertion-ordered, so candidate scanning and
// tie-breaking are deterministic run-to-run.
//
// # Errors
//
//	ErrNilNetwork    - nil network passed to NewBuilder.
//	ErrNotCellRoot   - ComputeWindowFor pivot is not a cell root.
//	ErrPivotTooLarge - the pivot's own MFFC already exceeds MaxGates.
//	ErrOptionViolation - non-positive MaxGates.
//
// # Integration
//
//   - Consumes core.CellNetwork; core.Mapped is the in-tree host type.
//   - WithLogger installs a zerolog.Logger tracing growth at debug level.
//
// The builder requires exclusive access to the network during
// ComputeWindowFor (it advances the network's traversal epoch).
package window
