// Package withdrawalsrepobridge exposes the withdrawal ledger over HTTP.
package withdrawalsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Withdrawal bridge
type Config struct {
	Log        *logger.Logger
	Repository *withdrawalsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Withdrawal
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/withdrawals", b.httpList, cfg.Middleware...)
	group.POST("/withdrawals", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateWithdrawalInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	withdrawal, err := b.withdrawalsRepository.Create(ctx, create)
	if err != nil {
		return errs.Newf(errs.Internal, "create withdrawal: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(withdrawal), http.StatusCreated)
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

	withdrawals, err := b.withdrawalsRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list withdrawals: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(withdrawals), page, func(w Withdrawal) int64 {
		return w.ID
	})
	return web.NewJSONResponse(resp)
}
