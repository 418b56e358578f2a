// Package employeesrepobridge exposes the employee roster over HTTP.
package employeesrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Employee bridge
type Config struct {
	Log        *logger.Logger
	Repository *employeesrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Employee
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/employees", b.httpList, cfg.Middleware...)
	group.GET("/employees/{employee_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/employees", b.httpCreate, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateEmployeeInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	employee, err := b.employeesRepository.Create(ctx, create)
	if err != nil {
		return errs.Newf(errs.Internal, "create employee: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(employee), http.StatusCreated)
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

	employees, err := b.employeesRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list employees: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(employees), page, func(e Employee) int64 {
		return e.ID
	})
	return web.NewJSONResponse(resp)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	employeeID, err := strconv.ParseInt(web.Param(r, "employee_id"), 10, 64)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid employee_id: %s", web.Param(r, "employee_id"))
	}

	employee, err := b.employeesRepository.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeesrepo.ErrEmployeeNotFound) {
			return errs.Newf(errs.NotFound, "employee %d not found", employeeID)
		}
		return errs.Newf(errs.Internal, "get employee: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(employee))
}
