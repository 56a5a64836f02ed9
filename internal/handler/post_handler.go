package handler

import (
	"net/http"
	"strconv"

	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler 同行招募板块
type PostHandler struct {
	svc       *service.PostService
	schedules *service.ScheduleService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{
		svc:       service.NewPostService(),
		schedules: service.NewScheduleService(),
	}
}

// Load POST /community/load 发帖界面的行程下拉项
func (h *PostHandler) Load(c *gin.Context) {
	rows, err := h.schedules.Titles(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Submit POST /community/submitPost
func (h *PostHandler) Submit(c *gin.Context) {
	if !writable(c) {
		return
	}
	var in service.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	id, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"postId": id, "msg": "게시글이 등록되었습니다."})
}

// ListMine GET /mypage/posts
func (h *PostHandler) ListMine(c *gin.Context) {
	rows, err := h.svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DeleteMine POST /mypage/posts/deletePosts
func (h *PostHandler) DeleteMine(c *gin.Context) {
	var req idsReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		badRequest(c, "삭제할 게시글을 선택해주세요.")
		return
	}
	if err := h.svc.DeleteMine(c.Request.Context(), middleware.UserID(c), req.IDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "게시글이 삭제되었습니다."})
}

// guestList 访客列表的公共参数处理，page 从 0 起
func (h *PostHandler) guestList(c *gin.Context, sortKey string) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "12"))
	metroID := c.Query("metroId")
	search := c.Query("search")

	result, err := h.svc.ListGuest(c.Request.Context(), sortKey, metroID, search, page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// List GET /community/communityList 最新顺
func (h *PostHandler) List(c *gin.Context) {
	h.guestList(c, "postDate")
}

// ListByView GET /community/communityListByView 浏览数顺
func (h *PostHandler) ListByView(c *gin.Context) {
	h.guestList(c, "viewCount")
}

// Search GET /community/communitySearch?search=...
func (h *PostHandler) Search(c *gin.Context) {
	h.guestList(c, "postDate")
}

// Detail GET /community/communityDetail/:userId/:postId 登录用户查看，浏览数加一
func (h *PostHandler) Detail(c *gin.Context) {
	authorID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	postID, ok := paramUint(c, "postId")
	if !ok {
		return
	}
	// 自己看自己的帖子不涨浏览数
	countView := middleware.UserID(c) != authorID
	row, err := h.svc.Detail(c.Request.Context(), authorID, postID, false, countView)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DetailGuest GET /community/communityDetailGuest/:userId/:postId 访客查看
func (h *PostHandler) DetailGuest(c *gin.Context) {
	authorID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	postID, ok := paramUint(c, "postId")
	if !ok {
		return
	}
	row, err := h.svc.Detail(c.Request.Context(), authorID, postID, true, true)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Update POST /community/postUpdate/:postId
func (h *PostHandler) Update(c *gin.Context) {
	if !writable(c) {
		return
	}
	postID, ok := paramUint(c, "postId")
	if !ok {
		return
	}
	var req struct {
		PostTitle   string `json:"postTitle"`
		PostContent string `json:"postContent"`
		PostPic     string `json:"postPic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청입니다.")
		return
	}
	err := h.svc.Update(c.Request.Context(), middleware.UserID(c), postID, false, req.PostTitle, req.PostContent, req.PostPic)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "게시글이 수정되었습니다."})
}

// Delete DELETE /community/postDelete/:postId
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := paramUint(c, "postId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), postID, false); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "게시글이 삭제되었습니다."})
}

// Complete POST /community/completedPost/:postId 招募状态翻转
func (h *PostHandler) Complete(c *gin.Context) {
	if !writable(c) {
		return
	}
	postID, ok := paramUint(c, "postId")
	if !ok {
		return
	}
	label, err := h.svc.Complete(c.Request.Context(), middleware.UserID(c), postID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recruitStatus": label})
}
