package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Envelope is the (nonce, tag, ciphertext) triple produced by one seal.
//
// Its external representation is base64(nonce || tag || ciphertext) using the
// standard alphabet with padding. The layout is fixed: nonce at 0:16, tag at
// 16:32, ciphertext from 32 to the end.
type Envelope struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// ParseEnvelope decodes the external representation of an envelope.
//
// Surrounding whitespace is ignored. The returned slices do not alias the
// input string. Returns ErrInvalidEnvelope if content is not valid base64 or
// decodes to fewer than HeaderSize bytes.
func ParseEnvelope(content string) (Envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: malformed base64: %v", ErrInvalidEnvelope, err)
	}

	if len(raw) < HeaderSize {
		return Envelope{}, fmt.Errorf(
			"%w: decoded length %d is shorter than %d bytes",
			ErrInvalidEnvelope,
			len(raw),
			HeaderSize,
		)
	}

	return Envelope{
		Nonce:      raw[:NonceSize:NonceSize],
		Tag:        raw[NonceSize:HeaderSize:HeaderSize],
		Ciphertext: raw[HeaderSize:],
	}, nil
}

// Bytes returns nonce || tag || ciphertext.
func (e Envelope) Bytes() []byte {
	out := make([]byte, 0, len(e.Nonce)+len(e.Tag)+len(e.Ciphertext))
	out = append(out, e.Nonce...)
	out = append(out, e.Tag...)
	return append(out, e.Ciphertext...)
}

// String returns the base64 external representation of the envelope.
func (e Envelope) String() string {
	return base64.StdEncoding.EncodeToString(e.Bytes())
}
