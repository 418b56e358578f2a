package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
	"github.com/jrazmi/shopkeep/sdk/telemetry"
)

// Logger writes information about the request to the logs. The trace ID
// is assigned by the web handler before the chain runs; here it is only
// read back out.
func Logger(log *logger.Logger) web.Middleware {
	tel := telemetry.NewTelemetry()

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}

			log.InfoContext(ctx, "request started", "traceid", tel.GetTraceID(ctx),
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			var statusCode = http.StatusOK
			if err := isError(resp); err != nil {
				statusCode = http.StatusInternalServerError
				if v, ok := resp.(interface{ HTTPStatus() int }); ok {
					statusCode = v.HTTPStatus()
				}
			}

			log.InfoContext(ctx, "request completed", "traceid", tel.GetTraceID(ctx),
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr,
				"statuscode", statusCode, "since", time.Since(now).String())

			return resp
		}
	}
}
