package api

import (
	"context"

	"github.com/vortexlabs/portfolio-backend/policy"
)

type keyType string

const callerKey keyType = "caller"

// ctxWithCaller attaches the resolved caller identity to the context
func ctxWithCaller(ctx context.Context, caller policy.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// callerFromCtx retrieves the caller identity; requests that never
// passed the gateway resolve to anonymous.
func callerFromCtx(ctx context.Context) policy.Caller {
	if caller, ok := ctx.Value(callerKey).(policy.Caller); ok {
		return caller
	}
	return policy.Anonymous()
}
