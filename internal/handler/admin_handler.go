package handler

import (
	"net/http"

	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端接口，所有入口都先过 adminOnly
type AdminHandler struct {
	users     *service.UserService
	schedules *service.ScheduleService
	posts     *service.PostService
	reports   *service.ReportService
	blocks    *service.BlockService
}

func NewAdminHandler(smtp pkg.SMTPConfig) *AdminHandler {
	return &AdminHandler{
		users:     service.NewUserService(smtp),
		schedules: service.NewScheduleService(),
		posts:     service.NewPostService(),
		reports:   service.NewReportService(),
		blocks:    service.NewBlockService(),
	}
}

// ListUsers GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	result, err := h.users.ListUsers(c.Request.Context(), adminPageQuery(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUser GET /admin/users/:userId
func (h *AdminHandler) GetUser(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateRole PATCH /admin/users/role 等级调整，处罚等级触发邮件通知
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	var req struct {
		UserID uint64 `json:"userId"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.users.UpdateRole(c.Request.Context(), req.UserID, req.Role); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "등급이 변경되었습니다."})
}

// ListSchedules GET /admin/schedules
func (h *AdminHandler) ListSchedules(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	result, err := h.schedules.List(c.Request.Context(), adminPageQuery(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ViewSchedule GET /admin/schedules/:scheduleId
func (h *AdminHandler) ViewSchedule(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	scheduleID, ok := paramUint(c, "scheduleId")
	if !ok {
		return
	}
	view, err := h.schedules.View(c.Request.Context(), 0, scheduleID, true)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteSchedules POST /admin/schedules/delete
func (h *AdminHandler) DeleteSchedules(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		badRequest(c, "삭제할 일정을 선택해주세요.")
		return
	}
	if err := h.schedules.DeleteAdmin(c.Request.Context(), req.IDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "일정이 삭제되었습니다."})
}

// ListPosts GET /admin/posts
func (h *AdminHandler) ListPosts(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	result, err := h.posts.List(c.Request.Context(), adminPageQuery(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeletePosts POST /admin/posts/delete
func (h *AdminHandler) DeletePosts(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		badRequest(c, "삭제할 게시글을 선택해주세요.")
		return
	}
	if err := h.posts.DeleteAdmin(c.Request.Context(), req.IDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "게시글이 삭제되었습니다."})
}

// UpdateExposure PATCH /admin/posts/exposure 帖子露出开关
func (h *AdminHandler) UpdateExposure(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	var req struct {
		PostID         uint64 `json:"postId"`
		ExposureStatus *bool  `json:"exposureStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == 0 || req.ExposureStatus == nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.posts.UpdateExposure(c.Request.Context(), req.PostID, *req.ExposureStatus); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "노출 상태가 변경되었습니다."})
}

// ListReports GET /admin/reports
func (h *AdminHandler) ListReports(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	result, err := h.reports.List(c.Request.Context(), adminPageQuery(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResolveReport PATCH /admin/reports 举报处理状态变更
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	var req struct {
		ReportID    uint64 `json:"reportId"`
		ReportFalse *int   `json:"reportFalse"` // 0 처리 전 / 1 허위 신고 / 2 처리 완료
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ReportID == 0 || req.ReportFalse == nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.reports.Resolve(c.Request.Context(), req.ReportID, *req.ReportFalse); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "처리 상태가 변경되었습니다."})
}

// ListBlocks GET /admin/blocks
func (h *AdminHandler) ListBlocks(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	result, err := h.blocks.List(c.Request.Context(), adminPageQuery(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBlocks POST /admin/blocks/delete 强制解除拉黑
func (h *AdminHandler) DeleteBlocks(c *gin.Context) {
	if !adminOnly(c) {
		return
	}
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		badRequest(c, "해제할 차단을 선택해주세요.")
		return
	}
	if err := h.blocks.UnblockAdmin(c.Request.Context(), req.IDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "차단이 해제되었습니다."})
}
