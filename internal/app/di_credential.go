package app

import (
	"fmt"

	credentialHTTP "github.com/allisson/credseal/internal/credential/http"
	credentialRepository "github.com/allisson/credseal/internal/credential/repository"
	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
	cryptoService "github.com/allisson/credseal/internal/crypto/service"
)

// KeyDeriver returns the PBKDF2 key deriver.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewPBKDF2KeyDeriver()
	})
	return c.keyDeriver
}

// Cipher returns the AES-256-EAX cipher engine.
func (c *Container) Cipher() cryptoService.CipherEngine {
	c.cipherInit.Do(func() {
		c.cipher = cryptoService.NewEAXCipher()
	})
	return c.cipher
}

// KeyResolver returns the passphrase resolver.
func (c *Container) KeyResolver() credentialUseCase.KeyResolver {
	c.keyResolverInit.Do(func() {
		c.keyResolver = credentialUseCase.NewKeyResolver()
	})
	return c.keyResolver
}

// CredentialUseCase returns the credential use case, instrumented with
// business metrics.
func (c *Container) CredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, c.credentialUseCaseErr = c.initCredentialUseCase()
	})
	return c.credentialUseCase, c.credentialUseCaseErr
}

// RecordUseCase returns a record use case over the credentials file at path.
// An empty path uses CREDENTIALS_FILE.
func (c *Container) RecordUseCase(path string) (credentialUseCase.RecordUseCase, error) {
	if path == "" {
		path = c.config.CredentialsFile
	}

	useCase, err := c.CredentialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential use case for record use case: %w", err)
	}

	return credentialUseCase.NewRecordUseCase(
		credentialRepository.NewDotEnvRecordRepository(path),
		useCase,
	), nil
}

// CredentialHandler returns the credential HTTP handler.
func (c *Container) CredentialHandler() (*credentialHTTP.CredentialHandler, error) {
	c.credentialHandlerInit.Do(func() {
		useCase, err := c.CredentialUseCase()
		if err != nil {
			c.credentialHandlerErr = fmt.Errorf("failed to get credential use case for credential handler: %w", err)
			return
		}
		c.credentialHandler = credentialHTTP.NewCredentialHandler(useCase, c.Logger())
	})
	return c.credentialHandler, c.credentialHandlerErr
}

func (c *Container) initCredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for credential use case: %w", err)
	}

	useCase := credentialUseCase.NewCredentialUseCase(
		c.KeyResolver(),
		c.KeyDeriver(),
		c.Cipher(),
		c.config.RequireExplicitKey,
	)
	return credentialUseCase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics), nil
}
