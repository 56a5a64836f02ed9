package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

// fail 统一的错误响应信封 {code, msg}
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkg.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "msg": err.Error()})
	case errors.Is(err, pkg.ErrUnauthorized),
		errors.Is(err, pkg.ErrTokenExpired), errors.Is(err, pkg.ErrTokenInvalid),
		errors.Is(err, pkg.ErrRefreshExpired), errors.Is(err, pkg.ErrRefreshInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"code": 2, "msg": "인증에 실패했습니다."})
	case errors.Is(err, service.ErrSuspended30):
		c.JSON(http.StatusForbidden, gin.H{"code": 8, "msg": "30일 정지된 계정입니다."})
	case errors.Is(err, service.ErrSuspendedPermanent):
		c.JSON(http.StatusForbidden, gin.H{"code": 9, "msg": "영구 정지된 계정입니다."})
	case errors.Is(err, service.ErrWithdrawn):
		c.JSON(http.StatusForbidden, gin.H{"code": 10, "msg": "탈퇴 처리된 계정입니다."})
	case errors.Is(err, pkg.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"code": 1, "msg": "권한이 없습니다."})
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 4, "msg": "대상을 찾을 수 없습니다."})
	case errors.Is(err, pkg.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"code": 5, "msg": "이미 존재합니다."})
	case errors.Is(err, pkg.ErrSamePassword):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": 7, "msg": "기존 비밀번호와 동일합니다."})
	case errors.Is(err, pkg.ErrQuota):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": 6, "msg": "데이터 소진"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": -1, "msg": "서버 오류가 발생했습니다."})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 0, "msg": msg})
}

// adminOnly 等级门禁，不是管理员直接截断
func adminOnly(c *gin.Context) bool {
	if middleware.Role(c) != model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"code": 1, "msg": "관리자 권한이 필요합니다."})
		return false
	}
	return true
}

// writable 写操作门禁，7 日停用中的账号只读
func writable(c *gin.Context) bool {
	if middleware.Role(c) == model.RoleBan7 {
		c.JSON(http.StatusForbidden, gin.H{"code": 11, "msg": "이용이 제한된 계정입니다."})
		return false
	}
	return true
}

// adminPageQuery 管理端列表参数，page 从 1 起
func adminPageQuery(c *gin.Context) pkg.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	size = pkg.ClampLimit(size, 10)

	return pkg.PageQuery{
		SortKey:   c.Query("sortKey"),
		SortValue: c.DefaultQuery("sortValue", "desc"),
		Skip:      (page - 1) * size,
		Limit:     size,
		Field:     c.Query("field"),
		Search:    strings.TrimSpace(c.Query("search")),
	}
}

// parseIDs 批量删除请求体 {ids: [...]}
type idsReq struct {
	IDs []uint64 `json:"ids"`
}

func paramUint(c *gin.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		badRequest(c, "잘못된 요청입니다.")
		return 0, false
	}
	return v, true
}
