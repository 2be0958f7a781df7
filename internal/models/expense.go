package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spend record. Rows are created and hard-deleted through
// the API; nothing updates them in place today, but DateUpdated is still
// refreshed by BeforeUpdate so direct store writes keep the invariant.
type Expense struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Merchant    string          `gorm:"type:varchar(255);not null;index" json:"merchant"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    string          `gorm:"type:varchar(255);not null" json:"category"`
	DateCreated time.Time       `gorm:"column:date_created;not null;<-:create" json:"date_created"`
	DateUpdated time.Time       `gorm:"column:date_updated;not null" json:"date_updated"`
}

func (e *Expense) TableName() string {
	return "expenses"
}

// BeforeCreate stamps both timestamps with the same instant.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	now := timestamp()
	if e.DateCreated.IsZero() {
		e.DateCreated = now
	}
	if e.DateUpdated.IsZero() || e.DateUpdated.Before(e.DateCreated) {
		e.DateUpdated = e.DateCreated
	}
	return nil
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.DateUpdated = timestamp()
	if e.DateUpdated.Before(e.DateCreated) {
		e.DateUpdated = e.DateCreated
	}
	return nil
}

func (e *Expense) String() string {
	return fmt.Sprintf("Expense[%d: %s at %s (%s)]", e.ID, e.Amount.String(), e.Merchant, e.Category)
}

// timestamp truncates to microseconds, the finest resolution postgres keeps,
// so the in-memory value equals what a later read returns.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
