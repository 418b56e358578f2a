package web

import (
	"context"
	"net/http"
)

type ctxKey int

const writerKey ctxKey = 1

// setWriter stores the response writer so middleware that must set headers
// directly, like CORS, can reach it.
func setWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, writerKey, w)
}

// GetWriter returns the response writer for the current request, or nil
// outside a request scope.
func GetWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(writerKey).(http.ResponseWriter)
	if !ok {
		return nil
	}
	return w
}
