// Package closingsrepobridge exposes the daily closing ledger over HTTP.
package closingsrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the DailyClosing bridge
type Config struct {
	Log        *logger.Logger
	Repository *closingsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for DailyClosing
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/closings", b.httpList, cfg.Middleware...)
	group.POST("/closings", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateClosingInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	closing, err := b.closingsRepository.Create(ctx, create)
	if err != nil {
		if errors.Is(err, closingsrepo.ErrClosingExists) {
			return errs.Newf(errs.AlreadyExists, "%s", closingsrepo.ErrClosingExists)
		}
		return errs.Newf(errs.Internal, "create closing: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(closing), http.StatusCreated)
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

	closings, err := b.closingsRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list closings: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(closings), page, func(c Closing) int64 {
		return c.ID
	})
	return web.NewJSONResponse(resp)
}
