package depreciation

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/taxledger/internal/clock"
	"github.com/smallbiznis/taxledger/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the monthly batch accrual over the asset register.
type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

type ServiceParams struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParams) (*Service, error) {
	if p.DB == nil || p.Log == nil || p.GenID == nil || p.Clock == nil {
		return nil, fmt.Errorf("depreciation: missing dependency")
	}
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("depreciation"),
		genID: p.GenID,
		clock: p.Clock,
	}, nil
}

// RunMonthly posts this month's accrual for every active asset and returns
// the number of assets processed. Running twice in the same period posts
// nothing the second time. Disposed and sold assets are left untouched, as
// are assets that are already fully depreciated.
func (s *Service) RunMonthly(ctx context.Context, assets []Asset) (int, error) {
	period := s.clock.Now().Format("2006-01")
	log := s.log.With(zap.String("period", period))

	processed := 0
	for _, a := range assets {
		if !a.active() {
			continue
		}

		acc, err := Accrue(a, s.clock.Now())
		if err != nil {
			log.Warn("asset skipped",
				zap.String("asset_id", a.ID),
				zap.Error(err),
			)
			continue
		}
		amount := acc.MonthlyDepreciation
		remaining := acc.DepreciableAmount.Sub(acc.Accumulated)
		if remaining.IsZero() || remaining.IsNegative() {
			continue
		}
		if amount.GreaterThan(remaining) {
			amount = remaining
		}

		posting := Posting{
			ID:      s.genID.Generate(),
			AssetID: a.ID,
			Period:  period,
			Amount:  amount,
		}
		if err := s.db.WithContext(ctx).Create(&posting).Error; err != nil {
			if db.IsDuplicateKeyErr(err) {
				// already posted this period
				continue
			}
			return processed, fmt.Errorf("post accrual for %s: %w", a.ID, err)
		}
		processed++
	}

	log.Info("monthly depreciation run complete", zap.Int("processed", processed))
	return processed, nil
}

var Module = fx.Module("depreciation",
	fx.Provide(NewService),
	fx.Invoke(migrate),
)

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&Posting{})
}
