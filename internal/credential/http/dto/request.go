// Package dto provides data transfer objects for the credential transit API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/credseal/internal/validation"
)

// maxKeyBytes bounds the explicit passphrase accepted per request.
const maxKeyBytes = 1024

// maxEnvelopeBytes is the base64 length of the largest envelope an accepted
// plaintext can produce, rounded up.
const maxEnvelopeBytes = (customValidation.MaxSecretBytes+32)*4/3 + 4

func keyRules() []validation.Rule {
	return []validation.Rule{
		customValidation.NotBlank,
		customValidation.MaxBytes(maxKeyBytes),
	}
}

// EncryptRequest contains a plaintext to seal. An empty plaintext is valid.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key,omitempty"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			customValidation.UTF8,
			customValidation.MaxBytes(customValidation.MaxSecretBytes),
		),
		validation.Field(&r.Key, keyRules()...),
	)
}

// EnvelopeRequest contains an envelope to open. Used by decrypt and verify.
type EnvelopeRequest struct {
	Envelope string `json:"envelope"`
	Key      string `json:"key,omitempty"`
}

// Validate checks if the envelope request is valid. The envelope format
// itself is checked by the codec so that it maps to invalid_envelope.
func (r *EnvelopeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Envelope,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxBytes(maxEnvelopeBytes),
		),
		validation.Field(&r.Key, keyRules()...),
	)
}
