// Package invoicesrepobridge exposes the invoice ledger over HTTP.
package invoicesrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Invoice bridge
type Config struct {
	Log        *logger.Logger
	Repository *invoicesrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Invoice
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/invoices", b.httpList, cfg.Middleware...)
	group.GET("/invoices/{invoice_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/invoices", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateInvoiceInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	invoice, err := b.invoicesRepository.Create(ctx, create)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
			return errs.Newf(errs.AlreadyExists, "invoice number %q already exists", input.InvoiceNo)
		}
		return errs.Newf(errs.Internal, "create invoice: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(invoice), http.StatusCreated)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := fop.ParsePageInt64Cursor(qp.Limit, qp.Cursor)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	orderBy, err := parseOrderBy(qp)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	invoices, err := b.invoicesRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list invoices: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(invoices), page, func(inv Invoice) int64 {
		return inv.ID
	})
	return web.NewJSONResponse(resp)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	invoiceID, err := strconv.ParseInt(web.Param(r, "invoice_id"), 10, 64)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid invoice_id: %s", web.Param(r, "invoice_id"))
	}

	invoice, err := b.invoicesRepository.Get(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, invoicesrepo.ErrInvoiceNotFound) {
			return errs.Newf(errs.NotFound, "invoice %d not found", invoiceID)
		}
		return errs.Newf(errs.Internal, "get invoice: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(invoice))
}
