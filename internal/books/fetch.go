package books

import (
	"context"
	"sync"

	"github.com/smallbiznis/taxledger/internal/depreciation"
	"github.com/smallbiznis/taxledger/internal/document"
	obsmetrics "github.com/smallbiznis/taxledger/internal/observability/metrics"
	"github.com/smallbiznis/taxledger/internal/reconcile"
	"go.uber.org/zap"
)

// Snapshot is one consistent fan-in of the collections a recompute needs.
// A source that failed to fetch is present as an empty slice and listed in
// Degraded: aggregation proceeds on partial data rather than failing.
type Snapshot struct {
	Documents   []document.TaxableDocument
	Settlements []reconcile.Record
	Notes       []document.TaxableDocument
	Degraded    []string
}

// fanOut runs the fetches concurrently and collects degraded source names.
type fanOut struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	log      *zap.Logger
	degraded []string
}

func (f *fanOut) fetch(source string, fn func() error) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if err := fn(); err != nil {
			f.mu.Lock()
			f.degraded = append(f.degraded, source)
			f.mu.Unlock()
			obsmetrics.Engine().IncSourceDegraded(source)
			f.log.Warn("source degraded to empty collection",
				zap.String("source", source),
				zap.Error(err),
			)
		}
	}()
}

// FetchReceivables fans out to invoices, collections and credit notes.
func (c *Client) FetchReceivables(ctx context.Context, sess Session) Snapshot {
	return c.fetchSnapshot(ctx, sess, "/invoices", "/collections", "/credit-notes",
		"invoices", "collections", "credit_notes")
}

// FetchPayables fans out to bills, payments and credit/debit notes.
func (c *Client) FetchPayables(ctx context.Context, sess Session) Snapshot {
	return c.fetchSnapshot(ctx, sess, "/bills", "/payments", "/credit-debit-notes",
		"bills", "payments", "credit_debit_notes")
}

func (c *Client) fetchSnapshot(ctx context.Context, sess Session, docPath, settlePath, notePath, docName, settleName, noteName string) Snapshot {
	var snap Snapshot
	f := &fanOut{log: c.log}

	f.fetch(docName, func() error {
		docs, err := fetchDocuments(ctx, c, sess, docPath)
		if err != nil {
			return err
		}
		snap.Documents = docs
		return nil
	})
	f.fetch(settleName, func() error {
		settles, err := fetchSettlements(ctx, c, sess, settlePath)
		if err != nil {
			return err
		}
		snap.Settlements = settles
		return nil
	})
	f.fetch(noteName, func() error {
		notes, err := fetchDocuments(ctx, c, sess, notePath)
		if err != nil {
			return err
		}
		snap.Notes = notes
		return nil
	})

	f.wg.Wait()
	snap.Degraded = f.degraded
	return snap
}

// TDSSnapshot is the fan-in for withholding aggregation: the three document
// collections that carry TDS amounts.
type TDSSnapshot struct {
	Bills    []document.TaxableDocument
	Payments []document.TaxableDocument
	Notes    []document.TaxableDocument
	Degraded []string
}

// FetchTDSSources fans out to bills, payments and credit/debit notes, all in
// document shape.
func (c *Client) FetchTDSSources(ctx context.Context, sess Session) TDSSnapshot {
	var snap TDSSnapshot
	f := &fanOut{log: c.log}

	f.fetch("bills", func() error {
		docs, err := c.Bills(ctx, sess)
		if err != nil {
			return err
		}
		snap.Bills = docs
		return nil
	})
	f.fetch("payments", func() error {
		docs, err := c.PaymentDocuments(ctx, sess)
		if err != nil {
			return err
		}
		snap.Payments = docs
		return nil
	})
	f.fetch("credit_debit_notes", func() error {
		docs, err := c.CreditDebitNotes(ctx, sess)
		if err != nil {
			return err
		}
		snap.Notes = docs
		return nil
	})

	f.wg.Wait()
	snap.Degraded = f.degraded
	return snap
}

// FetchBills degrades to an empty collection on failure.
func (c *Client) FetchBills(ctx context.Context, sess Session) ([]document.TaxableDocument, []string) {
	bills, err := c.Bills(ctx, sess)
	if err != nil {
		obsmetrics.Engine().IncSourceDegraded("bills")
		c.log.Warn("source degraded to empty collection",
			zap.String("source", "bills"),
			zap.Error(err),
		)
		return nil, []string{"bills"}
	}
	return bills, nil
}

// FetchAssets degrades to an empty register on failure, like every other
// source.
func (c *Client) FetchAssets(ctx context.Context, sess Session) ([]depreciation.Asset, []string) {
	assets, err := c.Assets(ctx, sess)
	if err != nil {
		obsmetrics.Engine().IncSourceDegraded("assets")
		c.log.Warn("source degraded to empty collection",
			zap.String("source", "assets"),
			zap.Error(err),
		)
		return nil, []string{"assets"}
	}
	return assets, nil
}
