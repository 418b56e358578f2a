// Tooling runs operator commands against the shopkeep database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/shopkeep/app/tooling/commands"
	"github.com/jrazmi/shopkeep/infrastructure/databases/postgresdb"
	"github.com/jrazmi/shopkeep/sdk/environment"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var build = "develop"

func processCommands(ctx context.Context, log *logger.Logger, command string, args []string, pool *pgxpool.Pool) error {
	switch command {
	case "migrate":
		log.InfoContext(ctx, "running migration")
		if err := commands.Migrate(pool, log.Logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.InfoContext(ctx, "migration completed successfully")
		return nil

	case "status":
		if err := commands.Status(ctx, log, pool); err != nil {
			return fmt.Errorf("status failed: %w", err)
		}
		return nil

	default:
		printHelp()
		return nil
	}

}
func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate - apply pending schema migrations")
	fmt.Println("  status  - print the applied migration history")
	fmt.Println()
	fmt.Println("Use 'go run app/tooling/main.go <command>' to run one.")
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// Parse command from arguments
	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	// Show help and exit early if requested
	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	pool, err := postgresdb.NewFromEnv("", postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log.Logger)))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}()
	log.InfoContext(ctx, "init", "service", "postgres")

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Process commands in a goroutine to allow for graceful shutdown
	done := make(chan error, 1)
	go func() {
		// Pass remaining args (everything after the command)
		args := []string{}
		if len(os.Args) > 2 {
			args = os.Args[2:]
		}
		done <- processCommands(ctx, log, command, args, pool)
	}()

	// Handle shutdown
	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		// Give a short time for commands to complete
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		// Wait for command to complete or timeout
		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}

}

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv("")
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err = run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}
