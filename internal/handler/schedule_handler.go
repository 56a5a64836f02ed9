package handler

import (
	"net/http"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{
		svc: service.NewScheduleService(),
	}
}

// Save POST /home/saveSchedule
func (h *ScheduleHandler) Save(c *gin.Context) {
	if !writable(c) {
		return
	}
	var in service.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	id, err := h.svc.Save(c.Request.Context(), middleware.UserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"scheduleId": id, "msg": "일정이 저장되었습니다."})
}

// ListMine GET /mypage/schedules
func (h *ScheduleHandler) ListMine(c *gin.Context) {
	rows, err := h.svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// View GET /mypage/schedules/:scheduleId
func (h *ScheduleHandler) View(c *gin.Context) {
	scheduleID, ok := paramUint(c, "scheduleId")
	if !ok {
		return
	}
	view, err := h.svc.View(c.Request.Context(), middleware.UserID(c), scheduleID, false)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type updateScheduleReq struct {
	ScheduleID uint64 `json:"scheduleId"`
	service.ScheduleInput
}

// Update PATCH /mypage/schedules/updateSchedule
func (h *ScheduleHandler) Update(c *gin.Context) {
	if !writable(c) {
		return
	}
	var req updateScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ScheduleID == 0 {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.svc.Update(c.Request.Context(), middleware.UserID(c), req.ScheduleID, &req.ScheduleInput); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "일정이 수정되었습니다."})
}

// Delete POST /mypage/schedules/deleteSchedules
func (h *ScheduleHandler) Delete(c *gin.Context) {
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		badRequest(c, "삭제할 일정을 선택해주세요.")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), req.IDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "일정이 삭제되었습니다."})
}
