package services

import "errors"

// Domain errors surfaced by the ledger engine. All are expected,
// recoverable conditions: the operation that raised one has committed no
// state. Handlers match them with errors.Is.
var (
	// ErrMissingField indicates a required field is absent, empty, or
	// numerically malformed (negative amount).
	ErrMissingField = errors.New("missing or invalid required field")

	// ErrDuplicateAccount indicates the account id is already registered.
	ErrDuplicateAccount = errors.New("account id already exists")

	// ErrUnbalancedEntry indicates total debits do not equal total credits
	// after rounding to 2 decimal places.
	ErrUnbalancedEntry = errors.New("debits do not equal credits")

	// ErrUnknownAccount indicates a journal line references an account id
	// not present in the chart of accounts.
	ErrUnknownAccount = errors.New("unknown account id")
)
