// Package books is the typed client for the remote persistence API the
// engines compute against. The client carries no session state: the caller
// passes an explicit Session into every request.
package books

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smallbiznis/taxledger/internal/depreciation"
	"github.com/smallbiznis/taxledger/internal/document"
	"github.com/smallbiznis/taxledger/internal/gst"
	obsmetrics "github.com/smallbiznis/taxledger/internal/observability/metrics"
	"github.com/smallbiznis/taxledger/internal/reconcile"
	"go.uber.org/zap"
)

var (
	ErrUpstream            = errors.New("books_upstream_error")
	ErrInvalidRegistration = errors.New("invalid_registration_id")
)

// Session is the explicit per-call authentication context. Nothing in this
// package reads ambient globals.
type Session struct {
	Token string
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	cache   VerifyCache
}

func NewClient(baseURL string, log *zap.Logger, cache VerifyCache) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.Named("books"),
		cache:   cache,
	}
}

func (c *Client) do(ctx context.Context, sess Session, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: status %d", ErrUpstream, method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode: %v", ErrUpstream, method, path, err)
	}
	return nil
}

func fetchDocuments(ctx context.Context, c *Client, sess Session, path string) ([]document.TaxableDocument, error) {
	var dtos []taxableDocumentDTO
	if err := c.do(ctx, sess, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]document.TaxableDocument, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDocument())
	}
	return out, nil
}

func fetchSettlements(ctx context.Context, c *Client, sess Session, path string) ([]reconcile.Record, error) {
	var dtos []settlementDTO
	if err := c.do(ctx, sess, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]reconcile.Record, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toRecord())
	}
	return out, nil
}

func (c *Client) Invoices(ctx context.Context, sess Session) ([]document.TaxableDocument, error) {
	return fetchDocuments(ctx, c, sess, "/invoices")
}

func (c *Client) Bills(ctx context.Context, sess Session) ([]document.TaxableDocument, error) {
	return fetchDocuments(ctx, c, sess, "/bills")
}

func (c *Client) CreditNotes(ctx context.Context, sess Session) ([]document.TaxableDocument, error) {
	return fetchDocuments(ctx, c, sess, "/credit-notes")
}

func (c *Client) CreditDebitNotes(ctx context.Context, sess Session) ([]document.TaxableDocument, error) {
	return fetchDocuments(ctx, c, sess, "/credit-debit-notes")
}

func (c *Client) PurchaseOrders(ctx context.Context, sess Session) ([]document.TaxableDocument, error) {
	return fetchDocuments(ctx, c, sess, "/purchase-orders")
}

func (c *Client) Collections(ctx context.Context, sess Session) ([]reconcile.Record, error) {
	return fetchSettlements(ctx, c, sess, "/collections")
}

func (c *Client) Payments(ctx context.Context, sess Session) ([]reconcile.Record, error) {
	return fetchSettlements(ctx, c, sess, "/payments")
}

// PaymentDocuments fetches payments in document shape, keeping the per-line
// detail and withholding amounts that the settlement shape drops.
func (c *Client) PaymentDocuments(ctx context.Context, sess Session) ([]document.TaxableDocument, error) {
	return fetchDocuments(ctx, c, sess, "/payments")
}

func (c *Client) Assets(ctx context.Context, sess Session) ([]depreciation.Asset, error) {
	var dtos []assetDTO
	if err := c.do(ctx, sess, http.MethodGet, "/assets", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]depreciation.Asset, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toAsset())
	}
	return out, nil
}

func (c *Client) Vendors(ctx context.Context, sess Session) ([]Vendor, error) {
	var out []Vendor
	if err := c.do(ctx, sess, http.MethodGet, "/vendors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DepreciationSchedule fetches the upstream static schedule for an asset.
func (c *Client) DepreciationSchedule(ctx context.Context, sess Session, assetID string) (ScheduleResponse, error) {
	var out ScheduleResponse
	err := c.do(ctx, sess, http.MethodGet, "/depreciation/schedule/"+assetID, nil, &out)
	return out, err
}

// TaxReportSummary fetches the period-bounded upstream aggregate as-is.
func (c *Client) TaxReportSummary(ctx context.Context, sess Session, timePeriod string) (TaxReportSummary, error) {
	var out TaxReportSummary
	err := c.do(ctx, sess, http.MethodGet, "/tax-report/summary?timePeriod="+timePeriod, nil, &out)
	return out, err
}

// Verify resolves a registration id to the party's trade name, PAN and
// address. A malformed id rejects the lookup without calling upstream, which
// lets callers skip auto-verification cheaply. Successful lookups are cached.
func (c *Client) Verify(ctx context.Context, sess Session, id gst.Registration) (Verification, error) {
	if !id.Valid() {
		return Verification{}, ErrInvalidRegistration
	}

	if c.cache != nil {
		if v, ok := c.cache.Get(ctx, string(id)); ok {
			obsmetrics.Engine().IncVerifyCache("hit")
			return v, nil
		}
		obsmetrics.Engine().IncVerifyCache("miss")
	}

	payload, err := json.Marshal(map[string]string{"gstin": string(id)})
	if err != nil {
		return Verification{}, err
	}
	var out Verification
	if err := c.do(ctx, sess, http.MethodPost, "/gst/verify", bytes.NewReader(payload), &out); err != nil {
		return Verification{}, err
	}

	if c.cache != nil {
		c.cache.Set(ctx, string(id), out)
	}
	return out, nil
}
