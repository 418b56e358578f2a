// Package debug serves the operational endpoints kept off the public
// API port: pprof, expvar counters, and the health probes.
package debug

import (
	"context"
	"database/sql"
	"encoding/json"
	"expvar"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Mux builds the debug router. lite may be nil when the task tables run
// on postgres.
func Mux(log *logger.Logger, pool *postgresdb.Pool, lite *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	mux.Handle("GET /debug/vars", expvar.Handler())

	mux.HandleFunc("GET /debug/liveness", liveness())
	mux.HandleFunc("GET /debug/readiness", readiness(log, pool, lite))

	return mux
}

// liveness reports that the process is up. It says nothing about
// whether dependencies are reachable.
func liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "up"})
	}
}

// readiness pings every configured datastore and fails the probe on the
// first one that does not answer.
func readiness(log *logger.Logger, pool *postgresdb.Pool, lite *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := postgresdb.StatusCheck(ctx, pool); err != nil {
			log.ErrorContext(ctx, "readiness", "datastore", "postgres", "err", err)
			respond(w, http.StatusInternalServerError, map[string]string{"status": "db not ready"})
			return
		}

		if lite != nil {
			if err := sqlitedb.StatusCheck(ctx, lite); err != nil {
				log.ErrorContext(ctx, "readiness", "datastore", "sqlite", "err", err)
				respond(w, http.StatusInternalServerError, map[string]string{"status": "db not ready"})
				return
			}
		}

		respond(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
