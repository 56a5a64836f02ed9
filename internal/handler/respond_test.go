package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestFail_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{pkg.ErrInvalid, http.StatusBadRequest, `"code":0`},
		{fmt.Errorf("%w: scheduleId", pkg.ErrInvalid), http.StatusBadRequest, `"code":0`},
		{pkg.ErrUnauthorized, http.StatusUnauthorized, `"code":2`},
		{pkg.ErrTokenExpired, http.StatusUnauthorized, `"code":2`},
		{pkg.ErrForbidden, http.StatusForbidden, `"code":1`},
		{pkg.ErrNotFound, http.StatusNotFound, `"code":4`},
		{pkg.ErrDuplicate, http.StatusConflict, `"code":5`},
		{pkg.ErrSamePassword, http.StatusUnprocessableEntity, `"code":7`},
		{pkg.ErrQuota, http.StatusUnprocessableEntity, `"code":6`},
		{service.ErrSuspended30, http.StatusForbidden, `"code":8`},
		{service.ErrSuspendedPermanent, http.StatusForbidden, `"code":9`},
		{service.ErrWithdrawn, http.StatusForbidden, `"code":10`},
		{assert.AnError, http.StatusInternalServerError, `"code":-1`},
	}
	for _, tt := range tests {
		c, w := testContext(t)
		fail(c, tt.err)
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
		assert.Contains(t, w.Body.String(), tt.code, tt.err.Error())
	}
}

func TestFail_QuotaMessage(t *testing.T) {
	c, w := testContext(t)
	fail(c, fmt.Errorf("%w: unexpected payload", pkg.ErrQuota))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "데이터 소진")
}

func TestAdminOnly(t *testing.T) {
	c, w := testContext(t)
	c.Set(middleware.ContextRoleKey, model.RoleUser)
	assert.False(t, adminOnly(c))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":1`)

	c, _ = testContext(t)
	c.Set(middleware.ContextRoleKey, model.RoleAdmin)
	assert.True(t, adminOnly(c))
}

func TestWritable(t *testing.T) {
	c, w := testContext(t)
	c.Set(middleware.ContextRoleKey, model.RoleBan7)
	assert.False(t, writable(c))
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, _ = testContext(t)
	c.Set(middleware.ContextRoleKey, model.RoleUser)
	assert.True(t, writable(c))
}

func TestAdminPageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/admin/users?page=3&size=20&sortKey=nickname&sortValue=asc&field=email&search=%20kim%20", nil)

	q := adminPageQuery(c)
	// page 从 1 起，第 3 页跳过前两页
	assert.Equal(t, 40, q.Skip)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, "nickname", q.SortKey)
	assert.Equal(t, "asc", q.SortValue)
	assert.Equal(t, "email", q.Field)
	assert.Equal(t, "kim", q.Search)
}

func TestAdminPageQuery_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/users", nil)

	q := adminPageQuery(c)
	assert.Equal(t, 0, q.Skip)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "desc", q.SortValue)
}
