package mysql

import (
	"context"
	"time"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// UserRow 管理端用户列表的投影行
type UserRow struct {
	UserID      uint64 `json:"userId"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Nickname    string `json:"nickname"`
	Gender      string `json:"gender"`
	Role        string `json:"role"`
	RegDate     string `json:"regdate"`
	ReportCount int    `json:"reportCount"`
}

// userColumns 排序/过滤键到物理列的白名单，未知键一律拒绝
var userColumns = map[string]string{
	"userId":      "id",
	"email":       "email",
	"username":    "username",
	"nickname":    "nickname",
	"gender":      "gender",
	"role":        "role",
	"regdate":     "reg_date",
	"reportCount": "report_count",
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.DB.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateRefreshToken 一人一令牌，新登录覆盖旧令牌
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, email, token string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("refresh_token", token).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, hashed string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("password", hashed).Error
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email, userpic, nickname, intro string) error {
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"userpic":    userpic,
			"nickname":   nickname,
			"user_intro": intro,
		}).Error
	return translate(err)
}

// UpdateRole 调整用户等级。进入处罚等级时记录处理时刻，恢复时清掉。
func (r *UserRepository) UpdateRole(ctx context.Context, userID uint64, role string) error {
	updates := map[string]any{"role": role}
	if model.Suspended(role) || role == model.RoleBan7 {
		now := time.Now()
		updates["end_date"] = &now
	} else {
		updates["end_date"] = nil
	}

	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// List 管理端分页查询，先数总量再开窗
func (r *UserRepository) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	base := r.DB.WithContext(ctx).Model(&model.User{})

	if q.Search != "" {
		col, ok := userColumns[q.Field]
		if !ok {
			return nil, pkg.ErrInvalid
		}
		base = base.Where("LOWER("+col+") LIKE LOWER(?)", likePattern(q.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	sortCol, ok := userColumns[q.SortKey]
	if !ok {
		return nil, pkg.ErrInvalid
	}

	var rows []UserRow
	err := base.
		Select("id AS user_id, email, username, nickname, gender, role, DATE_FORMAT(reg_date, '%Y-%m-%d') AS reg_date, report_count").
		Order(sortCol + " " + pkg.SortDir(q.SortValue)).
		Offset(q.Skip).Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Gender = model.GenderLabel(rows[i].Gender)
	}
	return &pkg.PageResult{Content: rows, TotalElements: total}, nil
}
