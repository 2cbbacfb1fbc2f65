package ledger

import "errors"

// Error kinds returned by the ledger. Callers match them with errors.Is;
// the HTTP layer maps each kind to a status code.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrSeatsUnavailable  = errors.New("no seats available")
)
