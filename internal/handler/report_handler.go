package handler

import (
	"net/http"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{
		svc: service.NewReportService(),
	}
}

// Add POST /report/add
func (h *ReportHandler) Add(c *gin.Context) {
	if !writable(c) {
		return
	}
	var req struct {
		PostID       uint64 `json:"postId"`
		ReportType   string `json:"reportType"` // R1~R4
		ReportDetail string `json:"reportDetail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == 0 {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	err := h.svc.Add(c.Request.Context(), middleware.UserID(c), req.PostID, req.ReportType, req.ReportDetail)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "신고가 접수되었습니다."})
}

// Cancel POST /report/cancel
func (h *ReportHandler) Cancel(c *gin.Context) {
	var req struct {
		PostID uint64 `json:"postId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == 0 {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), middleware.UserID(c), req.PostID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "신고가 취소되었습니다."})
}

// ListMine GET /report/user
func (h *ReportHandler) ListMine(c *gin.Context) {
	rows, err := h.svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
