// Shopkeep serves the task tracker and the small business ledger over a
// single JSON API. Postgres backs the ledger tables; the task tables can
// run on postgres or on a local sqlite file via TASKS_DATASTORE.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/shopkeep/app/shopkeep/config"
	"github.com/jrazmi/shopkeep/app/shopkeep/debug"
	"github.com/jrazmi/shopkeep/bridge/repositories/categoriesrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/closingsrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/depositsrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/employeesrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/expensesrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/invoicesrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/receivablesrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/reportsrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/salariesrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/statementsrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/shopkeep/bridge/repositories/withdrawalsrepobridge"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/mid"
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo/stores/categoriespgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo/stores/categoriessqlitestore"
	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo/stores/closingspgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo/stores/depositspgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo/stores/employeespgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo/stores/expensespgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo/stores/invoicespgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo/stores/receivablespgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo/stores/reportspgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo/stores/salariespgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo/stores/statementspgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo/stores/withdrawalspgxstore"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/environment"
	"github.com/jrazmi/shopkeep/sdk/logger"
	"github.com/jrazmi/shopkeep/sdk/telemetry"
)

var build = "develop"

func main() {
	environment.LoadEnv()
	ctx := context.Background()

	log, err := logger.NewFromEnv("")
	if err != nil {
		fmt.Println("initializing logger:", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var opts config.Options
	if err := environment.ParseEnvTags("", &opts); err != nil {
		return fmt.Errorf("parsing app options: %w", err)
	}

	// -------------------------------------------------------------------------
	// Datastores

	pool, err := postgresdb.NewFromEnv("",
		postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log.Logger)),
	)
	if err != nil {
		return fmt.Errorf("initializing postgres: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "stopping postgres pool")
		pool.Close()
	}()

	if err := postgresdb.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrating postgres: %w", err)
	}

	var lite *sql.DB
	if opts.TasksDatastore == config.DatastoreSQLite {
		lite, err = sqlitedb.NewFromEnv("")
		if err != nil {
			return fmt.Errorf("initializing sqlite: %w", err)
		}
		defer func() {
			log.InfoContext(ctx, "shutdown", "status", "closing sqlite datastore")
			lite.Close()
		}()

		if err := sqlitedb.Migrate(ctx, lite); err != nil {
			return fmt.Errorf("migrating sqlite: %w", err)
		}
	}

	listCache, err := cache.NewFromEnv("")
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	// -------------------------------------------------------------------------
	// Repositories

	log.InfoContext(ctx, "startup", "status", "initializing repositories", "tasks_datastore", opts.TasksDatastore)

	var tasksStorer tasksrepo.Storer
	var categoriesStorer categoriesrepo.Storer
	switch opts.TasksDatastore {
	case config.DatastoreSQLite:
		tasksStorer = taskssqlitestore.NewStore(log, lite)
		categoriesStorer = categoriessqlitestore.NewStore(log, lite)
	default:
		tasksStorer = taskspgxstore.NewStore(log, pool)
		categoriesStorer = categoriespgxstore.NewStore(log, pool)
	}

	cfg := config.Shopkeep{
		Build:  build,
		Logger: log,
		Repositories: config.Repositories{
			Tasks:       tasksrepo.NewRepository(log, tasksStorer),
			Categories:  categoriesrepo.NewRepository(log, categoriesStorer),
			Employees:   employeesrepo.NewRepository(log, employeespgxstore.NewStore(log, pool), listCache),
			Invoices:    invoicesrepo.NewRepository(log, invoicespgxstore.NewStore(log, pool), listCache),
			Salaries:    salariesrepo.NewRepository(log, salariespgxstore.NewStore(log, pool), listCache),
			Expenses:    expensesrepo.NewRepository(log, expensespgxstore.NewStore(log, pool), listCache),
			Withdrawals: withdrawalsrepo.NewRepository(log, withdrawalspgxstore.NewStore(log, pool), listCache),
			Receivables: receivablesrepo.NewRepository(log, receivablespgxstore.NewStore(log, pool), listCache),
			Closings:    closingsrepo.NewRepository(log, closingspgxstore.NewStore(log, pool), listCache),
			Deposits:    depositsrepo.NewRepository(log, depositspgxstore.NewStore(log, pool), listCache),
			Statements:  statementsrepo.NewRepository(log, statementspgxstore.NewStore(log, pool), listCache),
			Reports:     reportsrepo.NewRepository(log, reportspgxstore.NewStore(log, pool), listCache),
		},
	}

	// -------------------------------------------------------------------------
	// Web handler and server

	handler, err := webHandler(cfg)
	if err != nil {
		return fmt.Errorf("initializing web handler: %w", err)
	}

	server, err := web.NewServerFromEnv("",
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("initializing web server: %w", err)
	}

	if server.Config.EnableDebug {
		go func() {
			log.InfoContext(ctx, "startup", "status", "debug router started", "host", opts.DebugPort)
			if err := http.ListenAndServe(opts.DebugPort, debug.Mux(log, pool, lite)); err != nil {
				log.ErrorContext(ctx, "shutdown", "status", "debug router closed", "err", err)
			}
		}()
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// webHandler binds every repository bridge under /api/v1.
func webHandler(cfg config.Shopkeep) (http.Handler, error) {
	log := cfg.Logger

	handler, err := web.NewWebHandlerFromEnv("",
		web.WithLogging(log.Logger),
		web.WithTelemetry(telemetry.NewTelemetry()),
		web.WithGlobalMiddleware(
			mid.Logger(log),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api := handler.Group("/api/v1")

	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{Log: log, Repository: cfg.Repositories.Tasks})
	categoriesrepobridge.AddHttpRoutes(api, categoriesrepobridge.Config{Log: log, Repository: cfg.Repositories.Categories})
	employeesrepobridge.AddHttpRoutes(api, employeesrepobridge.Config{Log: log, Repository: cfg.Repositories.Employees})
	invoicesrepobridge.AddHttpRoutes(api, invoicesrepobridge.Config{Log: log, Repository: cfg.Repositories.Invoices})
	salariesrepobridge.AddHttpRoutes(api, salariesrepobridge.Config{Log: log, Repository: cfg.Repositories.Salaries})
	expensesrepobridge.AddHttpRoutes(api, expensesrepobridge.Config{Log: log, Repository: cfg.Repositories.Expenses})
	withdrawalsrepobridge.AddHttpRoutes(api, withdrawalsrepobridge.Config{Log: log, Repository: cfg.Repositories.Withdrawals})
	receivablesrepobridge.AddHttpRoutes(api, receivablesrepobridge.Config{Log: log, Repository: cfg.Repositories.Receivables})
	closingsrepobridge.AddHttpRoutes(api, closingsrepobridge.Config{Log: log, Repository: cfg.Repositories.Closings})
	depositsrepobridge.AddHttpRoutes(api, depositsrepobridge.Config{Log: log, Repository: cfg.Repositories.Deposits})
	statementsrepobridge.AddHttpRoutes(api, statementsrepobridge.Config{Log: log, Repository: cfg.Repositories.Statements})
	reportsrepobridge.AddHttpRoutes(api, reportsrepobridge.Config{Log: log, Repository: cfg.Repositories.Reports})

	return handler, nil
}
