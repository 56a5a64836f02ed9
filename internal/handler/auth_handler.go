package handler

import (
	"net/http"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc    *service.AuthService
	tokens *pkg.TokenManager
}

func NewAuthHandler(tokens *pkg.TokenManager) *AuthHandler {
	return &AuthHandler{
		svc:    service.NewAuthService(tokens),
		tokens: tokens,
	}
}

// JoinReq 注册请求体
type JoinReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
	Birth    string `json:"birth"`  // YYYYMMDD
	Gender   string `json:"gender"` // m / f
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Check access 有效性检查，中间件放行到这里就说明令牌没问题
func (h *AuthHandler) Check(c *gin.Context) {
	access := c.GetHeader("access")
	if access == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 2, "msg": "로그인이 필요합니다."})
		return
	}
	claims, err := h.tokens.ParseAccess(access)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId": claims.UserID,
		"email":  claims.Email,
		"role":   claims.Role,
	})
}

// Join 注册
func (h *AuthHandler) Join(c *gin.Context) {
	var req JoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}

	user := &model.User{
		Email:    req.Email,
		Username: req.Username,
		Nickname: req.Nickname,
		Password: req.Password,
		Birth:    req.Birth,
		Gender:   req.Gender,
	}
	if err := h.svc.Join(c.Request.Context(), user); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "msg": "회원가입이 완료되었습니다."})
}

// Login 登录，响应带 access/refresh 和用户信息
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}

	pair, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    user,
	})
}

// Reissue 两个头都要带。access 还有效就原样回传，
// 过期了才用 refresh 换新的。
func (h *AuthHandler) Reissue(c *gin.Context) {
	access := c.GetHeader("access")
	refresh := c.GetHeader("refresh")
	if access == "" || refresh == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 2, "msg": "로그인이 필요합니다."})
		return
	}

	if _, err := h.tokens.ParseAccess(access); err == nil {
		c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
		return
	}

	newAccess, err := h.svc.Reissue(c.Request.Context(), refresh)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("access", newAccess)
	c.JSON(http.StatusOK, gin.H{"access": newAccess, "refresh": refresh})
}
