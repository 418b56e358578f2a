// Package expensesrepobridge exposes the expense ledger over HTTP.
package expensesrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Expense bridge
type Config struct {
	Log        *logger.Logger
	Repository *expensesrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Expense
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/expenses", b.httpList, cfg.Middleware...)
	group.POST("/expenses", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateExpenseInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	expense, err := b.expensesRepository.Create(ctx, create)
	if err != nil {
		return errs.Newf(errs.Internal, "create expense: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(expense), http.StatusCreated)
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

	expenses, err := b.expensesRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list expenses: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(expenses), page, func(e Expense) int64 {
		return e.ID
	})
	return web.NewJSONResponse(resp)
}
