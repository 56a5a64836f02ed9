package handler

import (
	"net/http"

	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

// PlannerHandler 旅游 API 代理，行程规划界面用
type PlannerHandler struct {
	svc *service.PlannerService
}

func NewPlannerHandler(client *pkg.TourClient) *PlannerHandler {
	return &PlannerHandler{
		svc: service.NewPlannerService(client),
	}
}

// Places GET /home/apiList/:areaCode/:pageNo/:contentTypeId
func (h *PlannerHandler) Places(c *gin.Context) {
	items, err := h.svc.Places(c.Request.Context(), c.Param("areaCode"), c.Param("pageNo"), c.Param("contentTypeId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", items)
}

// Detail GET /home/apiDetail/:contentId
func (h *PlannerHandler) Detail(c *gin.Context) {
	items, err := h.svc.Detail(c.Request.Context(), c.Param("contentId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", items)
}

// Search GET /home/apiSearch/:metroId/:pageNo/:contentTypeId/:keyword
func (h *PlannerHandler) Search(c *gin.Context) {
	items, err := h.svc.Search(c.Request.Context(), c.Param("keyword"), c.Param("metroId"), c.Param("pageNo"), c.Param("contentTypeId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", items)
}
