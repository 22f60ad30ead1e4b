// Package domain defines credential records and their errors.
package domain

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/jellydator/validation"
)

// recordIDPattern matches identifiers usable as dotenv keys.
var recordIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// ValidateRecordID reports ErrInvalidRecordID when id is empty or cannot be
// written as a dotenv key.
func ValidateRecordID(id string) error {
	if err := validation.Validate(id,
		validation.Required,
		validation.Match(recordIDPattern).Error("must start with a letter or underscore and contain only letters, digits, underscores or dots"),
	); err != nil {
		return fmt.Errorf("%w: %q %v", ErrInvalidRecordID, id, err)
	}
	return nil
}

// DecryptFunc opens an envelope and returns the plaintext secret.
type DecryptFunc func(ctx context.Context, envelope string) (string, error)

// Record pairs a credential identifier with its stored envelope.
//
// The plaintext is never held by the record: every call to Password decrypts
// the envelope again, so a record can be logged or passed around without
// exposing the secret.
type Record struct {
	ID       string
	Envelope string

	decrypt DecryptFunc
}

// NewRecord creates a record whose Password accessor uses decrypt.
func NewRecord(id, envelope string, decrypt DecryptFunc) *Record {
	return &Record{
		ID:       id,
		Envelope: envelope,
		decrypt:  decrypt,
	}
}

// Password decrypts and returns the secret. The result is sensitive and must
// not be logged.
func (r *Record) Password(ctx context.Context) (string, error) {
	if r.decrypt == nil {
		return "", ErrRecordUnbound
	}
	return r.decrypt(ctx, r.Envelope)
}

// String implements fmt.Stringer without revealing the envelope.
func (r *Record) String() string {
	return "Record(" + r.ID + ")"
}

// VerificationResult reports whether a record's envelope could be opened.
type VerificationResult struct {
	ID    string
	Valid bool
	Err   error
}
