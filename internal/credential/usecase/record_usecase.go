package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	credentialDomain "github.com/allisson/credseal/internal/credential/domain"
)

// recordUseCase binds stored envelopes to the credential use case.
type recordUseCase struct {
	repository        RecordRepository
	credentialUseCase CredentialUseCase
}

// NewRecordUseCase creates a RecordUseCase.
func NewRecordUseCase(repository RecordRepository, credentialUseCase CredentialUseCase) RecordUseCase {
	return &recordUseCase{
		repository:        repository,
		credentialUseCase: credentialUseCase,
	}
}

// List returns all stored records sorted by identifier.
func (r *recordUseCase) List(ctx context.Context, explicitKey string) ([]*credentialDomain.Record, error) {
	stored, err := r.repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*credentialDomain.Record, 0, len(stored))
	for _, id := range sortedIDs(stored) {
		records = append(records, credentialDomain.NewRecord(id, stored[id], r.decryptWith(explicitKey)))
	}
	return records, nil
}

// Get returns a single record by identifier.
func (r *recordUseCase) Get(ctx context.Context, id, explicitKey string) (*credentialDomain.Record, error) {
	if err := credentialDomain.ValidateRecordID(id); err != nil {
		return nil, err
	}

	stored, err := r.repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	envelope, ok := stored[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", credentialDomain.ErrRecordNotFound, id)
	}
	return credentialDomain.NewRecord(id, envelope, r.decryptWith(explicitKey)), nil
}

// Save seals plaintext and persists the envelope under id.
func (r *recordUseCase) Save(
	ctx context.Context,
	id, plaintext, explicitKey string,
) (*credentialDomain.Record, error) {
	if err := credentialDomain.ValidateRecordID(id); err != nil {
		return nil, err
	}

	envelope, err := r.credentialUseCase.EncryptSecret(ctx, plaintext, explicitKey)
	if err != nil {
		return nil, err
	}

	if err := r.repository.Save(ctx, id, envelope); err != nil {
		return nil, err
	}
	return credentialDomain.NewRecord(id, envelope, r.decryptWith(explicitKey)), nil
}

// VerifyAll opens every stored envelope concurrently. Individual failures are
// reported in the results, not returned as an error.
func (r *recordUseCase) VerifyAll(
	ctx context.Context,
	explicitKey string,
) ([]credentialDomain.VerificationResult, error) {
	stored, err := r.repository.Load(ctx)
	if err != nil {
		return nil, err
	}

	ids := sortedIDs(stored)
	results := make([]credentialDomain.VerificationResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verifyErr := r.credentialUseCase.VerifySecret(gctx, stored[id], explicitKey)
			results[i] = credentialDomain.VerificationResult{
				ID:    id,
				Valid: verifyErr == nil,
				Err:   verifyErr,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *recordUseCase) decryptWith(explicitKey string) credentialDomain.DecryptFunc {
	return func(ctx context.Context, envelope string) (string, error) {
		return r.credentialUseCase.DecryptSecret(ctx, envelope, explicitKey)
	}
}

func sortedIDs(stored map[string]string) []string {
	ids := make([]string, 0, len(stored))
	for id := range stored {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
