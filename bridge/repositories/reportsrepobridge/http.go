// Package reportsrepobridge exposes the financial summary over HTTP.
package reportsrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the reports bridge
type Config struct {
	Log        *logger.Logger
	Repository *reportsrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for financial reports
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/summary", b.httpSummary, cfg.Middleware...)
}

func (b *bridge) httpSummary(ctx context.Context, r *http.Request) web.Encoder {
	summary, err := b.reportsRepository.Summary(ctx)
	if err != nil {
		return errs.Newf(errs.Internal, "financial summary: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(summary))
}
