// Package categoriesrepobridge exposes the category repository over HTTP.
package categoriesrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Category bridge
type Config struct {
	Log        *logger.Logger
	Repository *categoriesrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Category
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/categories", b.httpList, cfg.Middleware...)
	group.POST("/categories", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateCategoryInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	category, err := b.categoriesRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) || errors.Is(err, sqlitedb.ErrDBDuplicatedEntry) {
			return errs.Newf(errs.AlreadyExists, "category %q already exists", input.Name)
		}
		return errs.Newf(errs.Internal, "create category: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(category), http.StatusCreated)
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

	categories, err := b.categoriesRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list categories: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(categories), page, func(c Category) int64 {
		return c.ID
	})
	return web.NewJSONResponse(resp)
}
