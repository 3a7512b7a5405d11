package middleware

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-judge/auth"
)

// ContextUserIDKey is the gin context key holding the authenticated
// user's ObjectID.
const ContextUserIDKey = "user_id"

// AuthRequired verifies the Bearer token and stores the user id in the
// context. Requests without a valid token are rejected with 401.
func AuthRequired(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		sub, err := tokens.Parse(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth stores the user id when a valid token is present and lets
// the request through either way. The analyze endpoint uses it: anonymous
// callers get results without persistence.
func OptionalAuth(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		sub, err := tokens.Parse(token)
		if err != nil {
			c.Next()
			return
		}

		if userID, err := primitive.ObjectIDFromHex(sub); err == nil {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// UserID reads the authenticated user id set by AuthRequired or
// OptionalAuth.
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}
