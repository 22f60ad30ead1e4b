// Package repository persists credential envelopes in dotenv-formatted files.
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	credentialDomain "github.com/allisson/credseal/internal/credential/domain"
	apperrors "github.com/allisson/credseal/internal/errors"
)

// DotEnvRecordRepository stores one NAME=<envelope> entry per credential.
//
// The file is re-read on every Load so edits made outside the process are
// picked up. Writes are serialized within the process and replace the file
// atomically.
type DotEnvRecordRepository struct {
	path string
	mu   sync.Mutex
}

// NewDotEnvRecordRepository creates a repository backed by path.
func NewDotEnvRecordRepository(path string) *DotEnvRecordRepository {
	return &DotEnvRecordRepository{path: path}
}

// Load parses the file into identifier -> envelope.
func (r *DotEnvRecordRepository) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := godotenv.Read(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", credentialDomain.ErrRecordsFileNotFound, r.path)
		}
		return nil, apperrors.Wrapf(err, "failed to read credentials file %s", r.path)
	}
	return records, nil
}

// Save sets id to envelope, creating the file if it does not exist.
func (r *DotEnvRecordRepository) Save(ctx context.Context, id, envelope string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.Load(ctx)
	if err != nil {
		if !errors.Is(err, credentialDomain.ErrRecordsFileNotFound) {
			return err
		}
		records = make(map[string]string)
	}
	records[id] = envelope

	content, err := godotenv.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode credentials file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".credentials-*")
	if err != nil {
		return apperrors.Wrapf(err, "failed to create temporary credentials file in %s", filepath.Dir(r.path))
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(content + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set credentials file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close credentials file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return apperrors.Wrapf(err, "failed to replace credentials file %s", r.path)
	}
	return nil
}
