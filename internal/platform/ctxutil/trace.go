package ctxutil

import "context"

type traceDataKey struct{}

type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, data *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, data)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, ok := ctx.Value(traceDataKey{}).(*TraceData)
	if !ok {
		return nil
	}
	return td
}
