package requestdata

import (
	"context"

	"github.com/yungbote/contactbook-backend/internal/types"
)

type ctxKey struct{}

var requestDataKey = ctxKey{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// GetUser returns the authenticated user, or nil outside a guarded route.
func GetUser(ctx context.Context) *types.User {
	rd := GetRequestData(ctx)
	if rd == nil {
		return nil
	}
	return rd.User
}

type RequestData struct {
	TokenString string
	RequestID   string
	User        *types.User
}
