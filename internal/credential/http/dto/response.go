package dto

// EncryptResponse contains the sealed envelope.
type EncryptResponse struct {
	Envelope string `json:"envelope"`
}

// DecryptResponse contains the recovered secret.
// SECURITY: Plaintext is sensitive and must only be served over TLS.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// VerifyResponse reports that an envelope authenticated under the resolved key.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}
