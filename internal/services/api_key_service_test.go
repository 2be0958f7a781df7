package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expense-api/internal/config"
	"expense-api/internal/models"
	"expense-api/internal/repositories"
	"expense-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type APIKeyServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	apiKeyRepo *repository_mocks.MockAPIKeyRepositoryInterface
	service    *APIKeyService
	ctx        context.Context
}

func TestAPIKeyServiceSuite(t *testing.T) {
	suite.Run(t, new(APIKeyServiceSuite))
}

func (s *APIKeyServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.apiKeyRepo = repository_mocks.NewMockAPIKeyRepositoryInterface(s.ctrl)
	logger := NewExpenseLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.service = NewAPIKeyService(s.apiKeyRepo, logger, &config.SecurityConfig{
		APIKeyKeyword:      "Api-Key",
		APIKeyBCryptCost:   bcrypt.MinCost,
		APIKeyPrefixLength: 8,
		APIKeySecretLength: 32,
	}).(*APIKeyService)
	s.ctx = context.Background()
}

func (s *APIKeyServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// storedKey builds a persisted key whose hash matches the returned full key
func (s *APIKeyServiceSuite) storedKey(prefix, secret string) (*models.APIKey, string) {
	full := prefix + APIKeySeparator + secret
	hashed, err := bcrypt.GenerateFromPassword([]byte(full), bcrypt.MinCost)
	s.Require().NoError(err)
	return &models.APIKey{ID: 1, Name: "ci", Prefix: prefix, HashedKey: string(hashed)}, full
}

func (s *APIKeyServiceSuite) TestExtractKeyFromHeader() {
	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Api-Key abc.def", "abc.def", false},
		{"keyword is case-insensitive", "api-key abc.def", "abc.def", false},
		{"empty", "", "", true},
		{"bearer scheme", "Bearer abc.def", "", true},
		{"keyword only", "Api-Key", "", true},
		{"keyword and blank", "Api-Key   ", "", true},
		{"extra token", "Api-Key abc def", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			key, err := s.service.ExtractKeyFromHeader(tc.header)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tc.want, key)
		})
	}
}

func (s *APIKeyServiceSuite) TestAuthenticate_Valid() {
	stored, full := s.storedKey("abcd1234", "s3cr3t")
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "abcd1234").Return(stored, nil)

	key, err := s.service.Authenticate(s.ctx, full)

	s.NoError(err)
	s.Equal(stored, key)
}

func (s *APIKeyServiceSuite) TestAuthenticate_MalformedKey() {
	for _, presented := range []string{"nodot", ".secret", "prefix."} {
		_, err := s.service.Authenticate(s.ctx, presented)
		s.ErrorIs(err, ErrInvalidAPIKey, presented)
	}
}

func (s *APIKeyServiceSuite) TestAuthenticate_UnknownPrefix() {
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "unknown0").Return(nil, repositories.ErrAPIKeyNotFound)

	_, err := s.service.Authenticate(s.ctx, "unknown0.secret")

	s.ErrorIs(err, ErrInvalidAPIKey)
}

func (s *APIKeyServiceSuite) TestAuthenticate_WrongSecret() {
	stored, _ := s.storedKey("abcd1234", "right")
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "abcd1234").Return(stored, nil)

	_, err := s.service.Authenticate(s.ctx, "abcd1234.wrong")

	s.ErrorIs(err, ErrInvalidAPIKey)
}

func (s *APIKeyServiceSuite) TestAuthenticate_Revoked() {
	stored, full := s.storedKey("abcd1234", "s3cr3t")
	stored.Revoked = true
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "abcd1234").Return(stored, nil)

	_, err := s.service.Authenticate(s.ctx, full)

	s.ErrorIs(err, ErrRevokedAPIKey)
}

func (s *APIKeyServiceSuite) TestAuthenticate_Expired() {
	stored, full := s.storedKey("abcd1234", "s3cr3t")
	past := time.Now().Add(-time.Minute)
	stored.ExpiresAt = &past
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "abcd1234").Return(stored, nil)

	_, err := s.service.Authenticate(s.ctx, full)

	s.ErrorIs(err, ErrExpiredAPIKey)
}

func (s *APIKeyServiceSuite) TestAuthenticate_RevokedWithWrongSecretIsInvalid() {
	stored, _ := s.storedKey("abcd1234", "right")
	stored.Revoked = true
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "abcd1234").Return(stored, nil)

	_, err := s.service.Authenticate(s.ctx, "abcd1234.wrong")

	s.ErrorIs(err, ErrInvalidAPIKey)
}

func (s *APIKeyServiceSuite) TestAuthenticate_RepositoryError() {
	dbErr := errors.New("db down")
	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, "abcd1234").Return(nil, dbErr)

	_, err := s.service.Authenticate(s.ctx, "abcd1234.secret")

	s.ErrorIs(err, dbErr)
	s.NotErrorIs(err, ErrInvalidAPIKey)
}

func (s *APIKeyServiceSuite) TestIssueKey_RoundTrip() {
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return fixed }

	var created *models.APIKey
	s.apiKeyRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, k *models.APIKey) error {
		created = k
		return nil
	})

	issued, err := s.service.IssueKey(s.ctx, "  ci  ", 24*time.Hour)
	s.Require().NoError(err)

	prefix, secret, found := strings.Cut(issued.Key, APIKeySeparator)
	s.True(found)
	s.Len(prefix, 8)
	s.Len(secret, 32)
	s.Equal("ci", created.Name)
	s.Equal(prefix, created.Prefix)
	s.NotContains(created.HashedKey, secret)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(created.HashedKey), []byte(issued.Key)))
	s.Require().NotNil(created.ExpiresAt)
	s.Equal(fixed.Add(24*time.Hour), *created.ExpiresAt)

	s.apiKeyRepo.EXPECT().GetByPrefix(s.ctx, prefix).Return(created, nil)
	key, err := s.service.Authenticate(s.ctx, issued.Key)
	s.NoError(err)
	s.Equal(created, key)
}

func (s *APIKeyServiceSuite) TestIssueKey_NoExpiry() {
	s.apiKeyRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	issued, err := s.service.IssueKey(s.ctx, "local", 0)

	s.NoError(err)
	s.Nil(issued.APIKey.ExpiresAt)
}

func (s *APIKeyServiceSuite) TestIssueKey_EmptyName() {
	_, err := s.service.IssueKey(s.ctx, "   ", 0)

	s.ErrorIs(err, ErrAPIKeyNameEmpty)
}

func (s *APIKeyServiceSuite) TestIssueKey_UniqueKeys() {
	s.apiKeyRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil).Times(2)

	first, err := s.service.IssueKey(s.ctx, "a", 0)
	s.Require().NoError(err)
	second, err := s.service.IssueKey(s.ctx, "b", 0)
	s.Require().NoError(err)

	s.NotEqual(first.Key, second.Key)
}

func (s *APIKeyServiceSuite) TestRevokeKey() {
	s.apiKeyRepo.EXPECT().Revoke(s.ctx, "abcd1234").Return(nil)
	s.NoError(s.service.RevokeKey(s.ctx, "abcd1234"))

	s.apiKeyRepo.EXPECT().Revoke(s.ctx, "missing0").Return(repositories.ErrAPIKeyNotFound)
	s.ErrorIs(s.service.RevokeKey(s.ctx, "missing0"), ErrAPIKeyNotFound)
}

func (s *APIKeyServiceSuite) TestListKeys() {
	keys := []models.APIKey{{Prefix: "a"}, {Prefix: "b"}}
	s.apiKeyRepo.EXPECT().List(s.ctx).Return(keys, nil)

	got, err := s.service.ListKeys(s.ctx)

	s.NoError(err)
	s.Equal(keys, got)
}
