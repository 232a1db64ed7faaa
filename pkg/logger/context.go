package logger

import (
	"context"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []LoggingDetail
}

// ContextWith attaches logging details to the context,
// so every entry logged with it carries them.
func ContextWith(ctx context.Context, lds ...LoggingDetail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.Details = append(v.Details, lds...)
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

func (l *Logger) detailsFromContext(ctx context.Context) logEntry {
	le := make(logEntry)
	if ctx == nil {
		return le
	}
	v, ok := lookupValue(ctx)
	if !ok {
		return le
	}
	var chain []*ctxValue
	for ; v != nil; v = v.Super {
		chain = append(chain, v)
	}
	// outermost first, so inner details override
	for i := len(chain) - 1; 0 <= i; i-- {
		for _, ld := range chain[i].Details {
			ld.addTo(l, le)
		}
	}
	return le
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
