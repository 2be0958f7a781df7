package commands

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"expense-api/internal/buildinfo"
	"expense-api/internal/config"
	"expense-api/internal/database"
	"expense-api/internal/dto"
	"expense-api/internal/repositories"
	"expense-api/internal/services"

	"gorm.io/gorm/logger"
)

type CommandsTestSuite struct {
	suite.Suite
	dbPath string
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.dbPath = filepath.Join(s.T().TempDir(), "expenses.db")

	s.T().Setenv("DB_DRIVER", "sqlite")
	s.T().Setenv("DB_NAME", s.dbPath)
	s.T().Setenv("AUTO_MIGRATE", "true")
	s.T().Setenv("API_KEY_BCRYPT_COST", "4")
	s.T().Setenv("LOG_LEVEL", "error")
	s.T().Setenv("APP_ENV", "testing")
}

func (s *CommandsTestSuite) execute(args ...string) (string, error) {
	return s.executeContext(context.Background(), args...)
}

func (s *CommandsTestSuite) executeContext(ctx context.Context, args ...string) (string, error) {
	var out, errOut bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func issuedKey(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if key, ok := strings.CutPrefix(scanner.Text(), "Key:"); ok {
			return strings.TrimSpace(key)
		}
	}
	return ""
}

func (s *CommandsTestSuite) TestVersion() {
	out, err := s.execute("--version")

	s.Require().NoError(err)
	s.Contains(out, buildinfo.Version)
}

func (s *CommandsTestSuite) TestMigrate_SQLite() {
	out, err := s.execute("migrate")

	s.Require().NoError(err)
	s.Contains(out, "schema is up to date (sqlite)")

	// running it again is a no-op
	_, err = s.execute("migrate")
	s.NoError(err)
}

func (s *CommandsTestSuite) TestMigrate_InvalidConfiguration() {
	s.T().Setenv("DB_DRIVER", "mysql")

	_, err := s.execute("migrate")

	s.Error(err)
}

func (s *CommandsTestSuite) TestAPIKeyCreate_PrintsKeyThatAuthenticates() {
	out, err := s.execute("apikey", "create", "--name", "reporting")
	s.Require().NoError(err)

	key := issuedKey(out)
	s.Require().NotEmpty(key)
	s.Contains(out, "Expires: never")

	cfg := config.Load()
	db, err := database.New(&cfg.Database, logger.Silent)
	s.Require().NoError(err)
	defer db.Close()

	svc := services.NewAPIKeyService(repositories.NewAPIKeyRepository(db.DB), services.NewExpenseLogger(nil), &cfg.Security)
	apiKey, err := svc.Authenticate(context.Background(), key)
	s.Require().NoError(err)
	s.Equal("reporting", apiKey.Name)
}

func (s *CommandsTestSuite) TestAPIKeyCreate_WithExpiry() {
	out, err := s.execute("apikey", "create", "--name", "temporary", "--expires-in", "24h")

	s.Require().NoError(err)
	s.NotContains(out, "Expires: never")
}

func (s *CommandsTestSuite) TestAPIKeyCreate_RequiresName() {
	_, err := s.execute("apikey", "create")

	s.Error(err)
}

func (s *CommandsTestSuite) TestAPIKeyListAndRevoke() {
	out, err := s.execute("apikey", "create", "--name", "mobile")
	s.Require().NoError(err)
	prefix, _, _ := strings.Cut(issuedKey(out), services.APIKeySeparator)
	s.Require().NotEmpty(prefix)

	out, err = s.execute("apikey", "list")
	s.Require().NoError(err)
	s.Contains(out, "PREFIX")
	s.Contains(out, prefix)
	s.Contains(out, "mobile")

	out, err = s.execute("apikey", "revoke", prefix)
	s.Require().NoError(err)
	s.Contains(out, "revoked api key "+prefix)

	out, err = s.execute("apikey", "list", "--json")
	s.Require().NoError(err)

	var keys []dto.APIKeyResponse
	s.Require().NoError(json.Unmarshal([]byte(out), &keys))
	s.Require().Len(keys, 1)
	s.Equal(prefix, keys[0].Prefix)
	s.True(keys[0].Revoked)
}

func (s *CommandsTestSuite) TestAPIKeyRevoke_UnknownPrefix() {
	_, err := s.execute("apikey", "revoke", "missing1")

	s.Require().Error(err)
	s.Contains(err.Error(), "missing1")
}

func (s *CommandsTestSuite) TestServe_StopsWhenContextIsCancelled() {
	s.T().Setenv("SERVER_HOST", "127.0.0.1")
	s.T().Setenv("SERVER_PORT", "0")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err := s.executeContext(ctx, "serve")

	s.NoError(err)
}
