package handler

import (
	"net/http"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(smtp pkg.SMTPConfig) *UserHandler {
	return &UserHandler{
		svc: service.NewUserService(smtp),
	}
}

// Profile GET /mypage/profile
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.svc.Profile(c.Request.Context(), middleware.Email(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CheckPassword POST /mypage/checkPassword
func (h *UserHandler) CheckPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		badRequest(c, "비밀번호를 입력해주세요.")
		return
	}
	if err := h.svc.CheckPassword(c.Request.Context(), middleware.Email(c), req.Password); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "확인되었습니다."})
}

// UpdatePassword PATCH /mypage/updatePassword
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		badRequest(c, "비밀번호를 입력해주세요.")
		return
	}
	if err := h.svc.UpdatePassword(c.Request.Context(), middleware.Email(c), req.Password); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "비밀번호가 변경되었습니다."})
}

// UpdateProfile PATCH /mypage/updateProfile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Userpic   string `json:"userpic"`
		Nickname  string `json:"nickname"`
		UserIntro string `json:"userIntro"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.svc.UpdateProfile(c.Request.Context(), middleware.Email(c), req.Userpic, req.Nickname, req.UserIntro); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "프로필이 수정되었습니다."})
}
