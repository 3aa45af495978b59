package books

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/depreciation"
	"github.com/smallbiznis/taxledger/internal/document"
	"github.com/smallbiznis/taxledger/internal/reconcile"
)

// Wire shapes of the books API. Every numeric field may be absent and
// defaults to 0, every string field defaults to ""; decoding is the one
// place those defaults are applied.

type lineItemDTO struct {
	Name            string          `json:"name"`
	HSNCode         string          `json:"hsnCode"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	CGSTRate        decimal.Decimal `json:"cgstRate"`
	SGSTRate        decimal.Decimal `json:"sgstRate"`
	IGSTRate        decimal.Decimal `json:"igstRate"`
}

type taxableDocumentDTO struct {
	ReferenceNumber  string          `json:"referenceNumber"`
	CounterpartyName string          `json:"counterpartyName"`
	CounterpartyGSTIN string         `json:"counterpartyGstin"`
	ApprovalStatus   string          `json:"approvalStatus"`
	Status           string          `json:"status"`
	Date             time.Time       `json:"date"`
	Items            []lineItemDTO   `json:"items"`
	TDSAmount        decimal.Decimal `json:"tdsAmount"`
}

func (d taxableDocumentDTO) toDocument() document.TaxableDocument {
	items := make([]document.LineItem, 0, len(d.Items))
	for _, li := range d.Items {
		items = append(items, document.LineItem{
			Name:            li.Name,
			HSNCode:         li.HSNCode,
			Quantity:        li.Quantity,
			Rate:            li.Rate,
			DiscountPercent: li.DiscountPercent,
			CGSTRate:        li.CGSTRate,
			SGSTRate:        li.SGSTRate,
			IGSTRate:        li.IGSTRate,
		})
	}
	return document.TaxableDocument{
		Reference:         d.ReferenceNumber,
		CounterpartyName:  d.CounterpartyName,
		CounterpartyGSTIN: d.CounterpartyGSTIN,
		ApprovalStatus:    document.ApprovalStatus(d.ApprovalStatus),
		Status:            d.Status,
		Date:              d.Date,
		Items:             items,
		TDSAmount:         d.TDSAmount,
	}
}

type settlementDTO struct {
	ReferenceNumber  string              `json:"referenceNumber"`
	CounterpartyName string              `json:"counterpartyName"`
	ApprovalStatus   string              `json:"approvalStatus"`
	Status           string              `json:"status"`
	Date             time.Time           `json:"date"`
	Amount           decimal.Decimal     `json:"amount"`
	NetAmount        decimal.NullDecimal `json:"netAmount"`
}

func (d settlementDTO) toRecord() reconcile.Record {
	return reconcile.Record{
		Date:           d.Date,
		Reference:      d.ReferenceNumber,
		Counterparty:   d.CounterpartyName,
		ApprovalStatus: document.ApprovalStatus(d.ApprovalStatus),
		Status:         d.Status,
		Amount:         d.Amount,
		NetAmount:      d.NetAmount,
	}
}

type assetDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PurchaseValue   decimal.Decimal `json:"purchaseValue"`
	SalvageValue    decimal.Decimal `json:"salvageValue"`
	UsefulLifeYears int             `json:"usefulLifeYears"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	Method          string          `json:"depreciationMethod"`
	Status          string          `json:"status"`
}

func (d assetDTO) toAsset() depreciation.Asset {
	return depreciation.Asset{
		ID:              d.ID,
		Name:            d.Name,
		PurchaseValue:   d.PurchaseValue,
		SalvageValue:    d.SalvageValue,
		UsefulLifeYears: d.UsefulLifeYears,
		PurchaseDate:    d.PurchaseDate,
		Method:          depreciation.Method(d.Method),
		Status:          depreciation.AssetStatus(d.Status),
	}
}

// Vendor is a counterparty master record, used to auto-populate party
// details from a registration id.
type Vendor struct {
	Name  string `json:"name"`
	GSTIN string `json:"gstin"`
	State string `json:"state"`
}

// Verification is the result of a registration-id lookup.
type Verification struct {
	GSTIN     string `json:"gstin"`
	TradeName string `json:"tradeName"`
	PAN       string `json:"pan"`
	Address   string `json:"address"`
}

// TaxReportSummary is the upstream period-bounded GST/TDS aggregate. The
// engine does no period math of its own; it only reshapes this response.
type TaxReportSummary struct {
	TimePeriod   string          `json:"timePeriod"`
	GSTCollected decimal.Decimal `json:"gstCollected"`
	GSTPaid      decimal.Decimal `json:"gstPaid"`
	TDSDeducted  decimal.Decimal `json:"tdsDeducted"`
}

// ScheduleResponse mirrors GET /depreciation/schedule/{assetId}. The static
// table it carries is a non-normative fixture; the useful-life formula in the
// depreciation package is canonical.
type ScheduleResponse struct {
	Schedule []depreciation.ScheduleRow `json:"schedule"`
}

// RecordFromDocument derives a reconciliation record from a taxable
// document, pricing it at its grand total.
func RecordFromDocument(d document.TaxableDocument) reconcile.Record {
	return reconcile.Record{
		Date:           d.Date,
		Reference:      d.Reference,
		Counterparty:   d.CounterpartyName,
		ApprovalStatus: d.ApprovalStatus,
		Status:         d.Status,
		Amount:         document.GrandTotal(d.Items),
	}
}

// RecordsFromDocuments maps RecordFromDocument over a collection.
func RecordsFromDocuments(docs []document.TaxableDocument) []reconcile.Record {
	out := make([]reconcile.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, RecordFromDocument(d))
	}
	return out
}
