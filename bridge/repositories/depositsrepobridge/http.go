// Package depositsrepobridge exposes the deposit ledger over HTTP.
package depositsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Deposit bridge
type Config struct {
	Log        *logger.Logger
	Repository *depositsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Deposit
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/deposits", b.httpList, cfg.Middleware...)
	group.POST("/deposits", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateDepositInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	deposit, err := b.depositsRepository.Create(ctx, create)
	if err != nil {
		return errs.Newf(errs.Internal, "create deposit: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(deposit), http.StatusCreated)
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

	deposits, err := b.depositsRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list deposits: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(deposits), page, func(d Deposit) int64 {
		return d.ID
	})
	return web.NewJSONResponse(resp)
}
