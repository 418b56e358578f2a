// Package tasksrepobridge exposes the task repository over HTTP.
package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/errs"
	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/infrastructure/web"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.GET("/tasks/stats", b.httpStats, cfg.Middleware...)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}/status", b.httpUpdateStatus, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	create, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	task, err := b.tasksRepository.Create(ctx, create)
	if err != nil {
		return errs.Newf(errs.Internal, "create task: %s", err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
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

	tasks, err := b.tasksRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Newf(errs.Internal, "list tasks: %s", err)
	}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(MarshalListToBridge(tasks), page, func(t Task) int64 {
		return t.ID
	})
	return web.NewJSONResponse(resp)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := strconv.ParseInt(web.Param(r, "task_id"), 10, 64)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid task_id: %s", web.Param(r, "task_id"))
	}

	task, err := b.tasksRepository.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "get task: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := strconv.ParseInt(web.Param(r, "task_id"), 10, 64)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid task_id: %s", web.Param(r, "task_id"))
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	update, err := MarshalUpdateToRepository(input)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	if err := b.tasksRepository.Update(ctx, taskID, update); err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "update task: %s", err)
	}

	task, err := b.tasksRepository.Get(ctx, taskID)
	if err != nil {
		return errs.Newf(errs.Internal, "get task after update: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpUpdateStatus(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := strconv.ParseInt(web.Param(r, "task_id"), 10, 64)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid task_id: %s", web.Param(r, "task_id"))
	}

	var input UpdateTaskStatusInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	if err := b.tasksRepository.UpdateStatus(ctx, taskID, input.Status); err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "update task status: %s", err)
	}

	task, err := b.tasksRepository.Get(ctx, taskID)
	if err != nil {
		return errs.Newf(errs.Internal, "get task after status update: %s", err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := strconv.ParseInt(web.Param(r, "task_id"), 10, 64)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid task_id: %s", web.Param(r, "task_id"))
	}

	if err := b.tasksRepository.Delete(ctx, taskID); err != nil {
		if errors.Is(err, tasksrepo.ErrTaskNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", taskID)
		}
		return errs.Newf(errs.Internal, "delete task: %s", err)
	}

	return web.NewJSONResponse(fopbridge.NewCodeResponse("deleted", "task deleted"))
}

func (b *bridge) httpStats(ctx context.Context, r *http.Request) web.Encoder {
	stats, err := b.tasksRepository.Stats(ctx)
	if err != nil {
		return errs.Newf(errs.Internal, "task stats: %s", err)
	}

	return web.NewJSONResponse(MarshalStatsToBridge(stats))
}
