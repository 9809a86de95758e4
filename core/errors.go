package core

import "errors"

var (
	// ErrPIAfterGate indicates CreatePI was called after the first gate,
	// which would break normalised index order.
	ErrPIAfterGate = errors.New("core: primary input created after first gate")
	// ErrNotCellRoot indicates a cell declaration on a node that is not a gate.
	ErrNotCellRoot = errors.New("core: cell root must be a gate")
	// ErrTooManyPIs indicates a simulation request beyond MaxSimPIs inputs.
	ErrTooManyPIs = errors.New("core: too many primary inputs to simulate")
)
