package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-service/internal/application"
	"github.com/oksasatya/go-auth-service/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxEmailKey  = "userEmail"
)

// Auth validates the Authorization Bearer token and injects the decoded
// identity into the Gin context. Every failure mode is reported as a
// bare 401; the decoder already collapses malformed, forged, and
// out-of-window tokens into one error.
func Auth(decoder application.TokenDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		userID, email, err := decoder.Decode(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, userID.String())
		c.Set(CtxEmailKey, email.String())
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
