package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"expense-api/internal/config"
	"expense-api/internal/models"
	"expense-api/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeySeparator joins the public prefix and the secret of a key
	APIKeySeparator = "."

	apiKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidAPIKey     = errors.New("invalid api key")
	ErrRevokedAPIKey     = errors.New("api key has been revoked")
	ErrExpiredAPIKey     = errors.New("api key has expired")
	ErrAPIKeyNameEmpty   = errors.New("api key name cannot be empty")
	ErrAPIKeyNotFound    = errors.New("api key not found")
)

// IssuedAPIKey is returned once at issuance; Key is never persisted in clear
type IssuedAPIKey struct {
	Key    string
	APIKey *models.APIKey
}

// APIKeyService handles API key issuance and verification
type APIKeyService struct {
	apiKeyRepo   repositories.APIKeyRepositoryInterface
	logger       ExpenseLoggerInterface
	keyword      string
	cost         int
	prefixLength int
	secretLength int
	now          func() time.Time
}

// NewAPIKeyService creates a new API key service from the security configuration
func NewAPIKeyService(apiKeyRepo repositories.APIKeyRepositoryInterface, logger ExpenseLoggerInterface, cfg *config.SecurityConfig) APIKeyServiceInterface {
	return &APIKeyService{
		apiKeyRepo:   apiKeyRepo,
		logger:       logger,
		keyword:      cfg.APIKeyKeyword,
		cost:         cfg.APIKeyBCryptCost,
		prefixLength: cfg.APIKeyPrefixLength,
		secretLength: cfg.APIKeySecretLength,
		now:          time.Now,
	}
}

// ExtractKeyFromHeader extracts the key from an "<keyword> <key>" Authorization header.
// The keyword comparison is case-insensitive.
func (s *APIKeyService) ExtractKeyFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	keyword, key, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(keyword, s.keyword) {
		return "", ErrInvalidAuthHeader
	}

	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", ErrInvalidAuthHeader
	}

	return key, nil
}

// Authenticate checks the presented key against the stored hash before
// reporting revocation or expiry, so key state is only revealed to holders of the secret.
func (s *APIKeyService) Authenticate(ctx context.Context, presentedKey string) (*models.APIKey, error) {
	prefix, secret, found := strings.Cut(presentedKey, APIKeySeparator)
	if !found || prefix == "" || secret == "" {
		return nil, ErrInvalidAPIKey
	}

	apiKey, err := s.apiKeyRepo.GetByPrefix(ctx, prefix)
	if err != nil {
		if errors.Is(err, repositories.ErrAPIKeyNotFound) {
			return nil, ErrInvalidAPIKey
		}
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(apiKey.HashedKey), []byte(presentedKey)); err != nil {
		return nil, ErrInvalidAPIKey
	}

	if apiKey.IsRevoked() {
		return nil, ErrRevokedAPIKey
	}

	if apiKey.ExpiresAt != nil && s.now().After(*apiKey.ExpiresAt) {
		return nil, ErrExpiredAPIKey
	}

	return apiKey, nil
}

// IssueKey generates, hashes and stores a new key. expiresIn <= 0 means the key never expires.
func (s *APIKeyService) IssueKey(ctx context.Context, name string, expiresIn time.Duration) (*IssuedAPIKey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAPIKeyNameEmpty
	}

	prefix, err := randomString(s.prefixLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key prefix: %w", err)
	}

	secret, err := randomString(s.secretLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key secret: %w", err)
	}

	fullKey := prefix + APIKeySeparator + secret

	hashed, err := bcrypt.GenerateFromPassword([]byte(fullKey), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash api key: %w", err)
	}

	apiKey := &models.APIKey{
		Name:      name,
		Prefix:    prefix,
		HashedKey: string(hashed),
	}
	if expiresIn > 0 {
		expiresAt := s.now().UTC().Add(expiresIn)
		apiKey.ExpiresAt = &expiresAt
	}

	if err := s.apiKeyRepo.Create(ctx, apiKey); err != nil {
		return nil, fmt.Errorf("failed to store api key: %w", err)
	}

	s.logger.LogAPIKeyIssued(ctx, apiKey)

	return &IssuedAPIKey{Key: fullKey, APIKey: apiKey}, nil
}

func (s *APIKeyService) ListKeys(ctx context.Context) ([]models.APIKey, error) {
	keys, err := s.apiKeyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}

func (s *APIKeyService) RevokeKey(ctx context.Context, prefix string) error {
	if err := s.apiKeyRepo.Revoke(ctx, prefix); err != nil {
		if errors.Is(err, repositories.ErrAPIKeyNotFound) {
			return ErrAPIKeyNotFound
		}
		return fmt.Errorf("failed to revoke api key: %w", err)
	}

	s.logger.LogAPIKeyRevoked(ctx, prefix)
	return nil
}

func randomString(length int) (string, error) {
	max := big.NewInt(int64(len(apiKeyAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = apiKeyAlphabet[n.Int64()]
	}
	return string(out), nil
}
