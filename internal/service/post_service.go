package service

import (
	"context"
	"fmt"
	"strings"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"
)

type postRepo interface {
	Create(ctx context.Context, p *model.Post) error
	FindByID(ctx context.Context, id uint64) (*model.Post, error)
	ListByUser(ctx context.Context, userID uint64) ([]mysql.PostRow, error)
	ListGuest(ctx context.Context, sortCol, metroID, search string, skip, limit int) (*pkg.PageResult, error)
	DetailRow(ctx context.Context, userID, postID uint64) (*mysql.PostRow, error)
	IncrementView(ctx context.Context, postID uint64) error
	Update(ctx context.Context, postID uint64, title, content, pic string) error
	UpdateRecruit(ctx context.Context, postID uint64, recruiting bool) error
	UpdateExposure(ctx context.Context, postID uint64, exposed bool) error
	Delete(ctx context.Context, postID uint64) error
	DeleteMany(ctx context.Context, ids []uint64, userID uint64, admin bool) error
	List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error)
}

type postScheduleRepo interface {
	FindByID(ctx context.Context, id uint64) (*model.Schedule, error)
}

type PostService struct {
	repo      postRepo
	schedules postScheduleRepo
}

func NewPostService() *PostService {
	return &PostService{
		repo:      &mysql.PostRepository{DB: mysql.DB},
		schedules: &mysql.ScheduleRepository{DB: mysql.DB},
	}
}

// 访客列表默认一页 12 条
const guestPageSize = 12

// 访客列表允许的排序键
var guestSortColumns = map[string]string{
	"postDate":  "posts.post_date",
	"viewCount": "posts.view_count",
}

// PostInput 发帖参数
type PostInput struct {
	ScheduleID  uint64 `json:"scheduleId"`
	PostTitle   string `json:"postTitle"`
	PostContent string `json:"postContent"`
	Personnel   int    `json:"personnel"`
	PostPic     string `json:"postPic"`
}

// Create 发帖。引用的行程必须是本人的。
func (s *PostService) Create(ctx context.Context, userID uint64, in *PostInput) (uint64, error) {
	missing := []string{}
	if in.ScheduleID == 0 {
		missing = append(missing, "scheduleId")
	}
	if in.PostTitle == "" {
		missing = append(missing, "postTitle")
	}
	if in.PostContent == "" {
		missing = append(missing, "postContent")
	}
	if in.Personnel <= 0 {
		missing = append(missing, "personnel")
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", pkg.ErrInvalid, strings.Join(missing, ", "))
	}

	schedule, err := s.schedules.FindByID(ctx, in.ScheduleID)
	if err != nil {
		return 0, err
	}
	if schedule.UserID != userID {
		return 0, pkg.ErrForbidden
	}

	post := &model.Post{
		ScheduleID:  in.ScheduleID,
		UserID:      userID,
		PostTitle:   in.PostTitle,
		PostContent: in.PostContent,
		Personnel:   in.Personnel,
		PostPic:     in.PostPic,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

func (s *PostService) ListMine(ctx context.Context, userID uint64) ([]mysql.PostRow, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListGuest 访客列表，page 从 0 起
func (s *PostService) ListGuest(ctx context.Context, sortKey, metroID, search string, page, size int) (*pkg.PageResult, error) {
	sortCol, ok := guestSortColumns[sortKey]
	if !ok {
		return nil, fmt.Errorf("%w: sort", pkg.ErrInvalid)
	}
	if page < 0 {
		page = 0
	}
	size = pkg.ClampLimit(size, guestPageSize)
	return s.repo.ListGuest(ctx, sortCol, metroID, search, page*size, size)
}

// Detail 帖子详情。countView 为真时浏览数加一（本人查看自己的帖子不加）。
// 访客看不到被屏蔽的帖子。
func (s *PostService) Detail(ctx context.Context, authorID, postID uint64, guest, countView bool) (*mysql.PostRow, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != authorID {
		return nil, pkg.ErrNotFound
	}
	if guest && !post.ExposureStatus {
		return nil, pkg.ErrNotFound
	}
	if countView {
		if err := s.repo.IncrementView(ctx, postID); err != nil {
			return nil, err
		}
	}
	return s.repo.DetailRow(ctx, authorID, postID)
}

// Update 只有发帖人或管理员可以修改
func (s *PostService) Update(ctx context.Context, userID, postID uint64, admin bool, title, content, pic string) error {
	if title == "" || content == "" {
		return fmt.Errorf("%w: postTitle, postContent", pkg.ErrInvalid)
	}
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if !admin && post.UserID != userID {
		return pkg.ErrForbidden
	}
	return s.repo.Update(ctx, postID, title, content, pic)
}

// Delete 只有发帖人或管理员可以删除
func (s *PostService) Delete(ctx context.Context, userID, postID uint64, admin bool) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if !admin && post.UserID != userID {
		return pkg.ErrForbidden
	}
	return s.repo.Delete(ctx, postID)
}

// Complete 招募状态翻转，返回翻转后的状态文案
func (s *PostService) Complete(ctx context.Context, userID, postID uint64) (string, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return "", err
	}
	if post.UserID != userID {
		return "", pkg.ErrForbidden
	}
	next := !post.RecruitStatus
	if err := s.repo.UpdateRecruit(ctx, postID, next); err != nil {
		return "", err
	}
	return model.RecruitLabel(next), nil
}

// UpdateExposure 管理端切换帖子露出
func (s *PostService) UpdateExposure(ctx context.Context, postID uint64, exposed bool) error {
	return s.repo.UpdateExposure(ctx, postID, exposed)
}

// DeleteMine 批量删除本人的帖子。校验和删除在同一事务里，
// 混进一条别人的帖子时整批回滚。
func (s *PostService) DeleteMine(ctx context.Context, userID uint64, ids []uint64) error {
	return s.repo.DeleteMany(ctx, ids, userID, false)
}

// DeleteAdmin 管理端批量删除
func (s *PostService) DeleteAdmin(ctx context.Context, ids []uint64) error {
	return s.repo.DeleteMany(ctx, ids, 0, true)
}

// List 管理端帖子列表
func (s *PostService) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return s.repo.List(ctx, q)
}
