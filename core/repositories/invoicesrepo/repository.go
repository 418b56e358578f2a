// Package invoicesrepo records the sales invoices side of the ledger.
package invoicesrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("invoices")

// Storer defines the data storage interface for Invoice.
type Storer interface {
	repositories.Creator[Invoice, CreateInvoice]
	repositories.Getter[Invoice, int64]
	repositories.Lister[Invoice, Filter]
}

// Repository provides access to invoice storage. The default listing
// page is served read-through from the cache; every write invalidates
// it together with the financial summary.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Invoice repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// GenerateInvoiceNo returns an invoice number of the form INV-XXXXXXXX
// built from the first uuid block.
func GenerateInvoiceNo() string {
	return "INV-" + strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// Create records a new invoice, generating an invoice number when the
// payload leaves it blank. An empty issue date falls back to today.
func (r *Repository) Create(ctx context.Context, input CreateInvoice) (Invoice, error) {
	if input.CustomerName == "" {
		return Invoice{}, fmt.Errorf("create invoice: customer name is required")
	}
	if input.Total.IsNegative() {
		return Invoice{}, fmt.Errorf("create invoice: total cannot be negative")
	}
	if input.InvoiceNo == "" {
		input.InvoiceNo = GenerateInvoiceNo()
	}
	if input.IssuedOn.IsZero() {
		input.IssuedOn = time.Now()
	}

	invoice, err := r.storer.Create(ctx, input)
	if err != nil {
		return Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	r.cache.Delete(listCacheKey)
	r.cache.Delete(repositories.SummaryCacheKey)

	r.log.InfoContext(ctx, "created invoice", "invoice_id", invoice.ID, "invoice_no", invoice.InvoiceNo)
	return invoice, nil
}

// Get returns a single invoice by id.
func (r *Repository) Get(ctx context.Context, id int64) (Invoice, error) {
	invoice, err := r.storer.Get(ctx, id)
	if err != nil {
		return Invoice{}, fmt.Errorf("get invoice %d: %w", id, err)
	}
	return invoice, nil
}

// List returns invoices matching the filter, ordered and paginated.
// Only the default unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Invoice, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	invoices, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Invoice, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}
