// Package config carries the application level configuration and the
// wired repository set handed to the route registration.
package config

import (
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Datastore values accepted for the task tables. The ledger tables are
// always backed by postgres.
const (
	DatastorePostgres = "postgres"
	DatastoreSQLite   = "sqlite"
)

// Options holds the application settings read from the environment.
type Options struct {
	TasksDatastore string `env:"TASKS_DATASTORE" default:"postgres"`
	DebugPort      string `env:"DEBUG_PORT" default:":8090"`
}

// Repositories is the full set of repositories the dashboard serves.
type Repositories struct {
	Tasks       *tasksrepo.Repository
	Categories  *categoriesrepo.Repository
	Employees   *employeesrepo.Repository
	Invoices    *invoicesrepo.Repository
	Salaries    *salariesrepo.Repository
	Expenses    *expensesrepo.Repository
	Withdrawals *withdrawalsrepo.Repository
	Receivables *receivablesrepo.Repository
	Closings    *closingsrepo.Repository
	Deposits    *depositsrepo.Repository
	Statements  *statementsrepo.Repository
	Reports     *reportsrepo.Repository
}

// Shopkeep bundles everything main constructs before routes are bound.
type Shopkeep struct {
	Build        string
	Logger       *logger.Logger
	Repositories Repositories
}
