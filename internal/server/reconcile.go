package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/taxledger/internal/books"
	"github.com/smallbiznis/taxledger/internal/books/refresh"
	obsmetrics "github.com/smallbiznis/taxledger/internal/observability/metrics"
	"github.com/smallbiznis/taxledger/internal/reconcile"
	"go.uber.org/zap"
)

// Receivables recomputes the AR view: invoices less credit notes less
// collections.
func (s *Server) Receivables(c *gin.Context) {
	s.reconcileView(c, reconcile.AR, &s.arGuard, s.booksCli.FetchReceivables)
}

// Payables recomputes the AP view: bills less debit notes less payments.
func (s *Server) Payables(c *gin.Context) {
	s.reconcileView(c, reconcile.AP, &s.apGuard, s.booksCli.FetchPayables)
}

func (s *Server) reconcileView(c *gin.Context, role reconcile.Role, guard *refresh.Guard, fetch func(context.Context, books.Session) books.Snapshot) {
	gen := guard.Next()
	snap := fetch(c.Request.Context(), s.session(c))

	// A slower, earlier refresh that resolves after a newer one must not
	// overwrite it.
	if !guard.Accept(gen) {
		obsmetrics.Engine().IncStaleDiscarded()
		s.log.Debug("stale recompute discarded",
			zap.String("role", string(role)),
			zap.Uint64("generation", uint64(gen)),
		)
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{
			"type":    "superseded",
			"message": "superseded by a newer refresh",
		}})
		return
	}

	src := reconcile.Sources{
		Documents:   books.RecordsFromDocuments(snap.Documents),
		Settlements: snap.Settlements,
		Notes:       books.RecordsFromDocuments(snap.Notes),
	}

	entries := reconcile.Filter(reconcile.Ledger(role, src), reconcile.Query{
		Text:   c.Query("q"),
		Kind:   reconcile.Kind(c.Query("kind")),
		Status: c.Query("status"),
	})

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"summary":  reconcile.Summarize(role, src),
		"entries":  entries,
		"degraded": snap.Degraded,
	}})
}
