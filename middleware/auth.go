// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "devalaya/database/repository/user"
	"devalaya/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthUserMiddleware validates the bearer token, checks it against the
// user's stored token hash (cached in Redis, falling back to Mongo), and
// sets "userID" on the context.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Check the cached hash first; fall back to the user record.
		ctx := context.Background()
		cacheClient := utils.GetAuthCacheClient()
		cacheKey := utils.AuthCachePrefix + userID

		storedHash, err := cacheClient.Get(ctx, cacheKey).Result()
		if err == redis.Nil {
			u, err := repo.GetByID(userID)
			if err != nil || u == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			storedHash = u.TokenHash
			if storedHash != "" {
				cacheClient.Set(ctx, cacheKey, storedHash, utils.AuthCacheTTL)
			}
		} else if err != nil {
			// Redis trouble must not lock users out; verify against Mongo.
			u, repoErr := repo.GetByID(userID)
			if repoErr != nil || u == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			storedHash = u.TokenHash
		}

		if storedHash == "" || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or superseded"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
