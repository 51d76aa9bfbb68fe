package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"safeher/auth"
	"safeher/database"
	"safeher/model"
	"safeher/repository"

	"github.com/gin-gonic/gin"
)

const userAuthCachePrefix = "auth_"

// AuthMiddleware authenticates the bearer token and loads the matching user
// record into the gin context so handlers never do an implicit lookup. A
// valid token whose record has since disappeared is a 404, not a 401.
func AuthMiddleware(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if cached, ok := cachedUser(claims.PhoneNumber); ok {
			c.Set("user", cached)
			c.Next()
			return
		}

		user, err := users.FindByPhone(c.Request.Context(), claims.PhoneNumber)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		cacheUser(*user)
		c.Set("user", *user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated record placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (model.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return model.User{}, false
	}

	user, ok := val.(model.User)
	return user, ok
}

// InvalidateUserCache drops the cached record after any mutation so the next
// authenticated request rereads the store.
func InvalidateUserCache(phoneNumber string) {
	database.RedisHelper.Delete(userAuthCachePrefix + phoneNumber)
}

// cachedRecord re-attaches the secret hashes that model.User deliberately
// keeps out of its JSON form. The cache only ever holds hashes.
type cachedRecord struct {
	User     model.User `json:"user"`
	Password string     `json:"password"`
	Pin      string     `json:"pin"`
}

func cachedUser(phoneNumber string) (model.User, bool) {
	raw, err := database.RedisHelper.Get(userAuthCachePrefix + phoneNumber)
	if err != nil || raw == "" {
		return model.User{}, false
	}

	var rec cachedRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return model.User{}, false
	}
	rec.User.Password = rec.Password
	rec.User.Pin = rec.Pin
	return rec.User, true
}

func cacheUser(user model.User) {
	raw, err := json.Marshal(cachedRecord{User: user, Password: user.Password, Pin: user.Pin})
	if err != nil {
		return
	}
	database.RedisHelper.Set(userAuthCachePrefix+user.PhoneNumber, string(raw), time.Hour)
}
