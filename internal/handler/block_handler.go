package handler

import (
	"net/http"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	svc *service.BlockService
}

func NewBlockHandler() *BlockHandler {
	return &BlockHandler{
		svc: service.NewBlockService(),
	}
}

// Add POST /block/add
func (h *BlockHandler) Add(c *gin.Context) {
	var req struct {
		BlockedID uint64 `json:"blockedId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.svc.Add(c.Request.Context(), middleware.UserID(c), req.BlockedID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "차단되었습니다."})
}

// Delete POST /block/delete
func (h *BlockHandler) Delete(c *gin.Context) {
	var req struct {
		BlockedID uint64 `json:"blockedId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BlockedID == 0 {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	if err := h.svc.Unblock(c.Request.Context(), middleware.UserID(c), req.BlockedID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "차단이 해제되었습니다."})
}

// ListMine GET /block/user
func (h *BlockHandler) ListMine(c *gin.Context) {
	rows, err := h.svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
