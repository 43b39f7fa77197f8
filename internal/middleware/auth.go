package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noahsafar/sentiscore-sub000/internal/apierror"
	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/pkg/supabase"
)

// TokenVerifier checks a bearer token and resolves the user it belongs to.
type TokenVerifier interface {
	VerifyToken(token string) (*supabase.User, error)
}

// Auth middleware resolves the requesting user. Bearer tokens are verified
// against Supabase auth. In dev mode an X-User-ID header is accepted
// instead, so the API can be exercised without an auth stack.
func Auth(verifier TokenVerifier, devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())

		if devMode {
			if userID := c.GetHeader("X-User-ID"); userID != "" {
				setUser(c, userID)
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			abortUnauthorized(c)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authentication failed: invalid authorization format")
			abortUnauthorized(c)
			return
		}

		if verifier == nil {
			log.Warn("authentication failed: no token verifier configured")
			abortUnauthorized(c)
			return
		}

		user, err := verifier.VerifyToken(parts[1])
		if err != nil {
			log.Warn("authentication failed: token verification error",
				logger.Err(err),
			)
			abortUnauthorized(c)
			return
		}

		setUser(c, user.ID)
		log.Debug("authentication successful",
			logger.String("user_id", user.ID),
		)

		c.Next()
	}
}

func setUser(c *gin.Context, userID string) {
	c.Set("user_id", userID)
	ctx := logger.WithUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
}

func abortUnauthorized(c *gin.Context) {
	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
	c.Abort()
}
