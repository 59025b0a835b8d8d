package recon

import "errors"

// Failures in this package are local and typed: they are reported with
// errors.Is-comparable sentinels and never leave state half mutated.
var (
	// ErrIndexOutOfRange reports a commission row index that does not exist.
	ErrIndexOutOfRange = errors.New("commission row index out of range")

	// ErrNoGroupSelected reports a confirm or commission operation attempted
	// while no group is selected.
	ErrNoGroupSelected = errors.New("no group selected")

	// ErrUnknownField reports an attempt to update a commission row field
	// that is not editable. Commission itself is always derived from
	// lots and rebate, so it is rejected here too.
	ErrUnknownField = errors.New("unknown commission row field")
)
