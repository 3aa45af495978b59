package depreciation

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Posting records one month's accrual for one asset. The unique index on
// (asset_id, period) is what makes the monthly batch idempotent: a second run
// in the same period hits the index and is skipped.
type Posting struct {
	ID        snowflake.ID    `gorm:"primaryKey"`
	AssetID   string          `gorm:"column:asset_id;not null;uniqueIndex:ux_depreciation_postings_asset_period"`
	Period    string          `gorm:"type:text;not null;uniqueIndex:ux_depreciation_postings_asset_period"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Posting) TableName() string { return "depreciation_postings" }
