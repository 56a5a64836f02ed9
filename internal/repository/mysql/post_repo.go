package mysql

import (
	"context"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// postScan 列表查询的扫描结构，状态列保持原始布尔值
type postScan struct {
	PostID         uint64
	ScheduleID     uint64
	ScheduleTitle  string
	UserID         uint64
	Nickname       string
	MetroID        string
	PostTitle      string
	PostContent    string
	Personnel      int
	PostPic        string
	RecruitStatus  bool
	ViewCount      int64
	ExposureStatus bool
	PostDate       string
}

// PostRow 对外投影行，状态列转换成展示文案
type PostRow struct {
	PostID         uint64 `json:"postId"`
	ScheduleID     uint64 `json:"scheduleId"`
	ScheduleTitle  string `json:"scheduleTitle"`
	UserID         uint64 `json:"userId"`
	Nickname       string `json:"nickname"`
	MetroID        string `json:"metroId"`
	PostTitle      string `json:"postTitle"`
	PostContent    string `json:"postContent"`
	Personnel      int    `json:"personnel"`
	PostPic        string `json:"postPic"`
	RecruitStatus  string `json:"recruitStatus"`
	ViewCount      int64  `json:"viewCount"`
	ExposureStatus string `json:"exposureStatus"`
	PostDate       string `json:"postDate"`
}

var postColumns = map[string]string{
	"postId":         "posts.id",
	"scheduleId":     "posts.schedule_id",
	"scheduleTitle":  "schedules.schedule_title",
	"userId":         "posts.user_id",
	"nickname":       "users.nickname",
	"metroId":        "schedules.metro_id",
	"postTitle":      "posts.post_title",
	"personnel":      "posts.personnel",
	"recruitStatus":  "posts.recruit_status",
	"viewCount":      "posts.view_count",
	"exposureStatus": "posts.exposure_status",
	"postDate":       "posts.post_date",
}

const postSelect = "posts.id AS post_id, posts.schedule_id, schedules.schedule_title, " +
	"posts.user_id, users.nickname, schedules.metro_id, " +
	"posts.post_title, posts.post_content, posts.personnel, posts.post_pic, " +
	"posts.recruit_status, posts.view_count, posts.exposure_status, " +
	"DATE_FORMAT(posts.post_date, '%Y%m%d') AS post_date"

func toPostRow(s postScan) PostRow {
	return PostRow{
		PostID:         s.PostID,
		ScheduleID:     s.ScheduleID,
		ScheduleTitle:  s.ScheduleTitle,
		UserID:         s.UserID,
		Nickname:       s.Nickname,
		MetroID:        s.MetroID,
		PostTitle:      s.PostTitle,
		PostContent:    s.PostContent,
		Personnel:      s.Personnel,
		PostPic:        s.PostPic,
		RecruitStatus:  model.RecruitLabel(s.RecruitStatus),
		ViewCount:      s.ViewCount,
		ExposureStatus: model.ExposureLabel(s.ExposureStatus),
		PostDate:       s.PostDate,
	}
}

func toPostRows(scans []postScan) []PostRow {
	rows := make([]PostRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, toPostRow(s))
	}
	return rows
}

func (r *PostRepository) joined(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("JOIN schedules ON schedules.id = posts.schedule_id")
}

func (r *PostRepository) Create(ctx context.Context, p *model.Post) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var p model.Post
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ListByUser 我发布的招募帖
func (r *PostRepository) ListByUser(ctx context.Context, userID uint64) ([]PostRow, error) {
	scans := []postScan{}
	err := r.joined(ctx).
		Select(postSelect).
		Where("posts.user_id = ?", userID).
		Order("posts.post_date DESC").
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	return toPostRows(scans), nil
}

// ListGuest 访客列表。只返回露出中的帖子，metroID/search 为空表示不过滤。
// sortCol 由调用方传白名单内的列名。
func (r *PostRepository) ListGuest(ctx context.Context, sortCol string, metroID, search string, skip, limit int) (*pkg.PageResult, error) {
	base := r.joined(ctx).Where("posts.exposure_status = ?", true)
	if metroID != "" {
		base = base.Where("schedules.metro_id = ?", metroID)
	}
	if search != "" {
		base = base.Where("LOWER(posts.post_title) LIKE LOWER(?)", likePattern(search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	scans := []postScan{}
	err := base.
		Select(postSelect).
		Order(sortCol + " DESC").
		Offset(skip).Limit(limit).
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	return &pkg.PageResult{Content: toPostRows(scans), TotalElements: total}, nil
}

// DetailRow 帖子详情，包含发帖人和被引用行程的信息
func (r *PostRepository) DetailRow(ctx context.Context, userID, postID uint64) (*PostRow, error) {
	var scan postScan
	err := r.joined(ctx).
		Select(postSelect).
		Where("posts.id = ? AND posts.user_id = ?", postID, userID).
		Take(&scan).Error
	if err != nil {
		return nil, translate(err)
	}
	row := toPostRow(scan)
	return &row, nil
}

// IncrementView 浏览数只增不减，单独一条 UPDATE
func (r *PostRepository) IncrementView(ctx context.Context, postID uint64) error {
	return r.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *PostRepository) Update(ctx context.Context, postID uint64, title, content, pic string) error {
	res := r.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Updates(map[string]any{
			"post_title":   title,
			"post_content": content,
			"post_pic":     pic,
		})
	if res.Error != nil {
		return res.Error
	}
	return nil
}

// UpdateRecruit 切换招募状态
func (r *PostRepository) UpdateRecruit(ctx context.Context, postID uint64, recruiting bool) error {
	return r.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Update("recruit_status", recruiting).Error
}

// UpdateExposure 管理端切换露出状态
func (r *PostRepository) UpdateExposure(ctx context.Context, postID uint64, exposed bool) error {
	res := r.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Update("exposure_status", exposed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, postID uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Post{}, postID).Error
}

// DeleteMany 批量删除，与行程删除相同的先验证后删除
func (r *PostRepository) DeleteMany(ctx context.Context, ids []uint64, userID uint64, admin bool) error {
	if len(ids) == 0 {
		return pkg.ErrInvalid
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&model.Post{}).Where("id IN ?", ids)
		if !admin {
			q = q.Where("user_id = ?", userID)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return pkg.ErrNotFound
		}
		return tx.Where("id IN ?", ids).Delete(&model.Post{}).Error
	})
}

// List 管理端招募帖分页查询，含被屏蔽的帖子
func (r *PostRepository) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	base := r.joined(ctx)

	if q.Search != "" {
		col, ok := postColumns[q.Field]
		if !ok {
			return nil, pkg.ErrInvalid
		}
		base = base.Where("LOWER("+col+") LIKE LOWER(?)", likePattern(q.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	sortCol, ok := postColumns[q.SortKey]
	if !ok {
		return nil, pkg.ErrInvalid
	}

	scans := []postScan{}
	err := base.
		Select(postSelect).
		Order(sortCol + " " + pkg.SortDir(q.SortValue)).
		Offset(q.Skip).Limit(q.Limit).
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	return &pkg.PageResult{Content: toPostRows(scans), TotalElements: total}, nil
}
