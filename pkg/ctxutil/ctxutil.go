package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const operationIDKey ctxKey = "operation_id"

// WithOperationID stores the operation ID in the context.
func WithOperationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, operationIDKey, id)
}

// NewOperationID stores a fresh random operation ID in the context and returns both.
func NewOperationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithOperationID(ctx, id), id
}

// OperationIDFromCtx extracts the operation ID from the context.
// Returns an empty string if absent.
func OperationIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(operationIDKey).(string)
	return id
}
