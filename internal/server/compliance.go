package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/taxledger/internal/compliance"
)

// GSTCompliance classifies every bill for input-credit reporting and returns
// the mismatch summary.
func (s *Server) GSTCompliance(c *gin.Context) {
	bills, degraded := s.booksCli.FetchBills(c.Request.Context(), s.session(c))

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"summary":  compliance.Summarize(bills),
		"degraded": degraded,
	}})
}

// TDSCompliance merges withholding amounts from bills, payments and
// credit/debit notes into the deduction summary.
func (s *Server) TDSCompliance(c *gin.Context) {
	snap := s.booksCli.FetchTDSSources(c.Request.Context(), s.session(c))

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"summary":  compliance.AggregateTDS(snap.Bills, snap.Payments, snap.Notes),
		"degraded": snap.Degraded,
	}})
}

// TaxReportSummary proxies the upstream period-bounded aggregate.
func (s *Server) TaxReportSummary(c *gin.Context) {
	period := c.DefaultQuery("timePeriod", "this_quarter")

	summary, err := s.booksCli.TaxReportSummary(c.Request.Context(), s.session(c), period)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
