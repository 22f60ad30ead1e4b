// Package mocks provides testify mock implementations of the credential use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	credentialDomain "github.com/allisson/credseal/internal/credential/domain"
)

// MockCredentialUseCase is a mock implementation of usecase.CredentialUseCase.
type MockCredentialUseCase struct {
	mock.Mock
}

// EncryptSecret mocks the EncryptSecret method.
func (m *MockCredentialUseCase) EncryptSecret(ctx context.Context, plaintext, explicitKey string) (string, error) {
	args := m.Called(ctx, plaintext, explicitKey)
	return args.String(0), args.Error(1)
}

// DecryptSecret mocks the DecryptSecret method.
func (m *MockCredentialUseCase) DecryptSecret(ctx context.Context, envelope, explicitKey string) (string, error) {
	args := m.Called(ctx, envelope, explicitKey)
	return args.String(0), args.Error(1)
}

// VerifySecret mocks the VerifySecret method.
func (m *MockCredentialUseCase) VerifySecret(ctx context.Context, envelope, explicitKey string) error {
	args := m.Called(ctx, envelope, explicitKey)
	return args.Error(0)
}

// MockRecordRepository is a mock implementation of usecase.RecordRepository.
type MockRecordRepository struct {
	mock.Mock
}

// Load mocks the Load method.
func (m *MockRecordRepository) Load(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// Save mocks the Save method.
func (m *MockRecordRepository) Save(ctx context.Context, id, envelope string) error {
	args := m.Called(ctx, id, envelope)
	return args.Error(0)
}

// MockRecordUseCase is a mock implementation of usecase.RecordUseCase.
type MockRecordUseCase struct {
	mock.Mock
}

// List mocks the List method.
func (m *MockRecordUseCase) List(ctx context.Context, explicitKey string) ([]*credentialDomain.Record, error) {
	args := m.Called(ctx, explicitKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credentialDomain.Record), args.Error(1)
}

// Get mocks the Get method.
func (m *MockRecordUseCase) Get(ctx context.Context, id, explicitKey string) (*credentialDomain.Record, error) {
	args := m.Called(ctx, id, explicitKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Record), args.Error(1)
}

// Save mocks the Save method.
func (m *MockRecordUseCase) Save(
	ctx context.Context,
	id, plaintext, explicitKey string,
) (*credentialDomain.Record, error) {
	args := m.Called(ctx, id, plaintext, explicitKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Record), args.Error(1)
}

// VerifyAll mocks the VerifyAll method.
func (m *MockRecordUseCase) VerifyAll(
	ctx context.Context,
	explicitKey string,
) ([]credentialDomain.VerificationResult, error) {
	args := m.Called(ctx, explicitKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]credentialDomain.VerificationResult), args.Error(1)
}
