package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	staffRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/staff"
	"github.com/giavix1302/be-gym-management-system-sub000/utils"
)

// authCacheTTL bounds how long a token lookup may be served from Redis.
// Sign-in and sign-out delete the cached entry, so revocation does not wait
// for the TTL; the TTL only caps staleness if a delete is missed.
const authCacheTTL = 10 * time.Minute

type cachedStaff struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// StaffAuthMiddleware guards the management endpoints. The bearer token must
// validate and its hash must match the staff record's stored hash. Resolved
// identities are cached in the auth Redis DB so hot endpoints skip the
// database lookup.
func StaffAuthMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
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
		tokenHash := utils.HashToken(tokenString)

		cache := utils.GetAuthCacheClient()
		if raw, err := cache.Get(c.Request.Context(), utils.AuthTokenKey(tokenHash)).Result(); err == nil {
			var cached cachedStaff
			if json.Unmarshal([]byte(raw), &cached) == nil && cached.ID != "" {
				c.Set("staffID", cached.ID)
				c.Set("staffRole", cached.Role)
				c.Set("tokenHash", tokenHash)
				c.Next()
				return
			}
		}

		// Query the database using the token hash.
		staff, err := repo.GetByTokenHash(tokenHash)
		if err != nil || staff == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or staff not found"})
			return
		}

		if payload, err := json.Marshal(cachedStaff{ID: staff.ID, Role: staff.Role}); err == nil {
			cache.Set(c.Request.Context(), utils.AuthTokenKey(tokenHash), payload, authCacheTTL)
		}

		c.Set("staffID", staff.ID)
		c.Set("staffRole", staff.Role)
		c.Set("tokenHash", tokenHash)
		c.Next()
	}
}
