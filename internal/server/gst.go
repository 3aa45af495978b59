package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/document"
	"github.com/smallbiznis/taxledger/internal/gst"
)

type classifyRequest struct {
	CompanyGSTIN string `json:"company_gstin"`
	PartyGSTIN   string `json:"party_gstin"`
}

// ClassifyGST derives the tax structure from the two party ids. The company
// id falls back to the configured reporting company when omitted.
func (s *Server) ClassifyGST(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	company := strings.TrimSpace(req.CompanyGSTIN)
	if company == "" {
		company = s.engineCfg.Get().CompanyGSTIN
	}

	gstType := gst.Classify(gst.Registration(company), gst.Registration(strings.TrimSpace(req.PartyGSTIN)))
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"gst_type": gstType}})
}

type applyRatesRequest struct {
	GSTType      string              `json:"gst_type"`
	CompanyGSTIN string              `json:"company_gstin"`
	PartyGSTIN   string              `json:"party_gstin"`
	Items        []document.LineItem `json:"items"`
}

// ApplyGSTRates rewrites the rate split of the submitted items. The caller
// either names the classification directly or supplies the party ids and
// lets the engine classify first.
func (s *Server) ApplyGSTRates(c *gin.Context) {
	var req applyRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cfg := s.engineCfg.Get()
	nominal := decimal.NewFromFloat(cfg.DefaultNominalRate)

	var gstType gst.Type
	switch gst.Type(req.GSTType) {
	case gst.IntraState, gst.InterState, gst.Undetermined:
		gstType = gst.Type(req.GSTType)
	case "":
		company := strings.TrimSpace(req.CompanyGSTIN)
		if company == "" {
			company = cfg.CompanyGSTIN
		}
		gstType = gst.Classify(gst.Registration(company), gst.Registration(strings.TrimSpace(req.PartyGSTIN)))
	default:
		AbortWithError(c, newValidationError("gst_type", "invalid_gst_type", "invalid gst_type"))
		return
	}

	items := gst.ApplyRates(gstType, req.Items, nominal)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"gst_type": gstType,
		"items":    items,
		"totals":   document.Totals(items),
	}})
}

type verifyRequest struct {
	GSTIN string `json:"gstin"`
}

// VerifyGSTIN resolves a registration id to party details for
// auto-population. Malformed ids are rejected without an upstream call.
func (s *Server) VerifyGSTIN(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	v, err := s.booksCli.Verify(c.Request.Context(), s.session(c), gst.Registration(strings.TrimSpace(req.GSTIN)))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": v})
}
