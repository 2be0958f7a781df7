package models

import (
	"time"

	"gorm.io/gorm"
)

// APIKey is a credential accepted by the API key gate. Only the prefix is
// stored in clear; the full "<prefix>.<secret>" value is kept as a bcrypt hash.
type APIKey struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Prefix    string     `gorm:"type:varchar(16);not null;uniqueIndex" json:"prefix"`
	HashedKey string     `gorm:"type:varchar(255);not null" json:"-"`
	Revoked   bool       `gorm:"not null;default:false" json:"revoked"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

func (k *APIKey) TableName() string {
	return "api_keys"
}

func (k *APIKey) IsExpired() bool {
	return k.ExpiresAt != nil && time.Now().After(*k.ExpiresAt)
}

func (k *APIKey) IsRevoked() bool {
	return k.Revoked
}

func (k *APIKey) IsValid() bool {
	return !k.IsExpired() && !k.IsRevoked()
}

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.CreatedAt.IsZero() {
		k.CreatedAt = timestamp()
	}
	return nil
}
