package trace

import "context"

type ctxKey string

const IDKey ctxKey = "trace_id"

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, IDKey, id)
}

func IDFromContext(ctx context.Context) string {
	if v := ctx.Value(IDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
