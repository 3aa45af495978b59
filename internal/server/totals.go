package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/taxledger/internal/document"
)

type totalsRequest struct {
	Items []document.LineItem `json:"items"`
}

// ComputeTotals returns the document-level totals for a set of line items.
func (s *Server) ComputeTotals(c *gin.Context) {
	var req totalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": document.Totals(req.Items)})
}
