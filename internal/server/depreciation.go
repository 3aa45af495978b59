package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/taxledger/internal/depreciation"
	obsmetrics "github.com/smallbiznis/taxledger/internal/observability/metrics"
	"go.uber.org/zap"
)

var errAssetNotFound = errors.New("asset not found")

// AssetDepreciation returns the live accrual and the per-year schedule for
// one asset. The asset register is fetched fresh from the books service so
// the figures reflect the current state, not a snapshot.
func (s *Server) AssetDepreciation(c *gin.Context) {
	id := c.Param("id")

	assets, err := s.booksCli.Assets(c.Request.Context(), s.session(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	for _, a := range assets {
		if a.ID != id {
			continue
		}
		acc, err := depreciation.Accrue(a, s.clock.Now())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		sched, err := depreciation.Schedule(a)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"asset":    a,
			"accrual":  acc,
			"schedule": sched,
		}})
		return
	}

	AbortWithError(c, errAssetNotFound)
}

// RunMonthlyDepreciation posts this month's accrual for every active asset.
// The batch is idempotent per calendar month; a repeat run reports zero
// postings.
func (s *Server) RunMonthlyDepreciation(c *gin.Context) {
	assets, degraded := s.booksCli.FetchAssets(c.Request.Context(), s.session(c))

	processed, err := s.deprSvc.RunMonthly(c.Request.Context(), assets)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if processed > 0 {
		obsmetrics.Engine().AddBatchPostings(processed)
	}

	s.log.Info("monthly depreciation run finished",
		zap.Int("processed", processed),
		zap.Int("assets", len(assets)),
	)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"processed": processed,
		"degraded":  degraded,
	}})
}
