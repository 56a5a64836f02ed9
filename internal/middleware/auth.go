package middleware

import (
	"context"
	"net/http"
	"regexp"

	"Travel_Mate/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userId"
	ContextEmailKey  = "email"
	ContextRoleKey   = "role"
)

// 免认证路径：登录、注册、令牌重签和访客浏览
var exemptExact = map[string]bool{
	"/":                              true,
	"/login":                         true,
	"/join":                          true,
	"/reissue":                       true,
	"/community/communityList":       true,
	"/community/communityListByView": true,
	"/community/communitySearch":     true,
}

var exemptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/home(/.*)?$`),
	regexp.MustCompile(`^/community/communityDetailGuest/[^/]+/[^/]+$`),
}

// /home 下只有存行程需要登录
var includeAgain = map[string]bool{
	"/home/saveSchedule": true,
}

func exempt(path string) bool {
	if includeAgain[path] {
		return false
	}
	if exemptExact[path] {
		return true
	}
	for _, p := range exemptPatterns {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}

// Reissuer access 过期时用 refresh 换新 access
type Reissuer func(ctx context.Context, refreshToken string) (string, error)

// Auth 全局认证中间件。access 还有效就直接放行；
// 过期时尝试用 refresh 重签，新 access 放进响应头让客户端替换。
func Auth(tokens *pkg.TokenManager, reissue Reissuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if exempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		// 客户端每次请求都带两个头
		access := c.GetHeader("access")
		refresh := c.GetHeader("refresh")
		if access == "" || refresh == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 2, "msg": "로그인이 필요합니다."})
			return
		}

		claims, err := tokens.ParseAccess(access)
		if err == nil {
			setClaims(c, claims)
			c.Next()
			return
		}

		newAccess, err := reissue(c.Request.Context(), refresh)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 3, "msg": "다시 로그인해주세요."})
			return
		}

		claims, err = tokens.ParseAccess(newAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 3, "msg": "다시 로그인해주세요."})
			return
		}
		// 客户端从这个响应头里拿新令牌
		c.Header("access", newAccess)
		setClaims(c, claims)
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *pkg.Claims) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextEmailKey, claims.Email)
	c.Set(ContextRoleKey, claims.Role)
}

// UserID 取当前登录用户 id，未认证路径上是 0
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

func Email(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}

func Role(c *gin.Context) string {
	return c.GetString(ContextRoleKey)
}
