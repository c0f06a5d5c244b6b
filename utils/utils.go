package utils

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

func CreateCtxWithRqID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey, uuid.NewString())
}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}
	return rqID
}
