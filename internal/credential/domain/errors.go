package domain

import (
	"github.com/allisson/credseal/internal/errors"
)

// Credential record error definitions.
var (
	// ErrRecordNotFound indicates no record exists with the requested identifier.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "credential record not found")

	// ErrRecordsFileNotFound indicates the credentials file does not exist.
	ErrRecordsFileNotFound = errors.Wrap(errors.ErrNotFound, "credentials file not found")

	// ErrRecordUnbound indicates a record was built without a decrypt accessor.
	ErrRecordUnbound = errors.New("credential record has no decrypt accessor")

	// ErrInvalidRecordID indicates a record identifier is empty.
	ErrInvalidRecordID = errors.Wrap(errors.ErrInvalidInput, "invalid credential record id")
)
