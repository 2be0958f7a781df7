package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAPIKeyNotFound = errors.New("api key not found")
)

type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new API key repository
func NewAPIKeyRepository(db *gorm.DB) APIKeyRepositoryInterface {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *models.APIKey) error {
	if key == nil {
		return errors.New("api key cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}

	return nil
}

func (r *apiKeyRepository) GetByPrefix(ctx context.Context, prefix string) (*models.APIKey, error) {
	var key models.APIKey
	err := r.db.WithContext(ctx).Where("prefix = ?", prefix).First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return &key, nil
}

func (r *apiKeyRepository) List(ctx context.Context) ([]models.APIKey, error) {
	keys := make([]models.APIKey, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}

func (r *apiKeyRepository) Revoke(ctx context.Context, prefix string) error {
	result := r.db.WithContext(ctx).
		Model(&models.APIKey{}).
		Where("prefix = ?", prefix).
		Update("revoked", true)
	if result.Error != nil {
		return fmt.Errorf("failed to revoke api key: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrAPIKeyNotFound
	}

	return nil
}
