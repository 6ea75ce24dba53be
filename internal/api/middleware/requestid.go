package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/catscii/internal/shared/id"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses a well-formed inbound X-Request-ID or generates one,
// stores it on the gin context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID, ok := id.ParseRequestID(c.GetHeader(RequestIDHeader))
		if !ok {
			reqID = id.NewRequestID()
		}

		c.Set(requestIDKey, reqID)
		c.Header(RequestIDHeader, reqID.String())
		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID
func GetRequestID(c *gin.Context) id.RequestID {
	if v, ok := c.Get(requestIDKey); ok {
		if reqID, ok := v.(id.RequestID); ok {
			return reqID
		}
	}
	return ""
}
