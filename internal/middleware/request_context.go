package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/contactbook-backend/internal/requestdata"
)

const headerRequestID = "X-Request-Id"

// AttachRequestContext assigns every request an id, favoring the caller's
// header, then the active trace, then a fresh uuid.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(headerRequestID))
		if reqID == "" {
			spanCtx := trace.SpanContextFromContext(c.Request.Context())
			if spanCtx.HasTraceID() {
				reqID = spanCtx.TraceID().String()
			}
		}
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{RequestID: reqID})
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", reqID)
		c.Writer.Header().Set(headerRequestID, reqID)
		c.Next()
	}
}
