package mysql

import (
	"context"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

// ScheduleRow 行程列表的投影行，日期统一成 YYYYMMDD
type ScheduleRow struct {
	ScheduleID    uint64 `json:"scheduleId"`
	UserID        uint64 `json:"userId"`
	Nickname      string `json:"nickname"`
	MetroID       string `json:"metroId"`
	ScheduleTitle string `json:"scheduleTitle"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	RegisterDate  string `json:"registerDate"`
}

// ScheduleTitleRow 发帖时加载的行程下拉项
type ScheduleTitleRow struct {
	ScheduleID    uint64 `json:"scheduleId"`
	ScheduleTitle string `json:"scheduleTitle"`
}

var scheduleColumns = map[string]string{
	"scheduleId":    "schedules.id",
	"userId":        "schedules.user_id",
	"nickname":      "users.nickname",
	"metroId":       "schedules.metro_id",
	"scheduleTitle": "schedules.schedule_title",
	"startDate":     "schedules.start_date",
	"endDate":       "schedules.end_date",
	"registerDate":  "schedules.register_date",
}

const scheduleSelect = "schedules.id AS schedule_id, schedules.user_id, users.nickname, " +
	"schedules.metro_id, schedules.schedule_title, " +
	"DATE_FORMAT(schedules.start_date, '%Y%m%d') AS start_date, " +
	"DATE_FORMAT(schedules.end_date, '%Y%m%d') AS end_date, " +
	"DATE_FORMAT(schedules.register_date, '%Y%m%d') AS register_date"

// CreateWithDetails 行程和明细在同一事务里落库
func (r *ScheduleRepository) CreateWithDetails(ctx context.Context, s *model.Schedule, details []model.ScheduleDetail) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].ScheduleID = s.ID
		}
		if len(details) == 0 {
			return nil
		}
		return tx.Create(&details).Error
	})
}

// UpdateWithDetails 编辑行程：更新主表后整批替换明细
func (r *ScheduleRepository) UpdateWithDetails(ctx context.Context, s *model.Schedule, details []model.ScheduleDetail) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 归属校验。不存在和不是自己的统一按未找到处理
		var existing model.Schedule
		if err := tx.Where("id = ? AND user_id = ?", s.ID, s.UserID).First(&existing).Error; err != nil {
			return translate(err)
		}
		err := tx.Model(&model.Schedule{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"metro_id":       s.MetroID,
				"start_date":     s.StartDate,
				"end_date":       s.EndDate,
				"schedule_title": s.ScheduleTitle,
			}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("schedule_id = ?", s.ID).Delete(&model.ScheduleDetail{}).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].ID = 0
			details[i].ScheduleID = s.ID
		}
		if len(details) == 0 {
			return nil
		}
		return tx.Create(&details).Error
	})
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id uint64) (*model.Schedule, error) {
	var s model.Schedule
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// FindRowByID 单条行程的投影视图（明细页头部）
func (r *ScheduleRepository) FindRowByID(ctx context.Context, id uint64) (*ScheduleRow, error) {
	var row ScheduleRow
	err := r.DB.WithContext(ctx).Model(&model.Schedule{}).
		Select(scheduleSelect).
		Joins("JOIN users ON users.id = schedules.user_id").
		Where("schedules.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// ListByUser 我的行程列表，最新注册的在前
func (r *ScheduleRepository) ListByUser(ctx context.Context, userID uint64) ([]ScheduleRow, error) {
	rows := []ScheduleRow{}
	err := r.DB.WithContext(ctx).Model(&model.Schedule{}).
		Select(scheduleSelect).
		Joins("JOIN users ON users.id = schedules.user_id").
		Where("schedules.user_id = ?", userID).
		Order("schedules.register_date DESC").
		Scan(&rows).Error
	return rows, err
}

// TitlesByUser 只取 id 和标题，发帖界面选择引用的行程
func (r *ScheduleRepository) TitlesByUser(ctx context.Context, userID uint64) ([]ScheduleTitleRow, error) {
	rows := []ScheduleTitleRow{}
	err := r.DB.WithContext(ctx).Model(&model.Schedule{}).
		Select("id AS schedule_id, schedule_title").
		Where("user_id = ?", userID).
		Order("register_date DESC").
		Scan(&rows).Error
	return rows, err
}

// Details 行程明细，按行内顺序排列
func (r *ScheduleRepository) Details(ctx context.Context, scheduleID uint64) ([]model.ScheduleDetail, error) {
	details := []model.ScheduleDetail{}
	err := r.DB.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("schedule_order ASC").
		Find(&details).Error
	return details, err
}

// DeleteMany 批量删除。先校验每个 id 都属于请求者（管理员跳过校验），
// 再在同一事务内连同明细一起删除。
func (r *ScheduleRepository) DeleteMany(ctx context.Context, ids []uint64, userID uint64, admin bool) error {
	if len(ids) == 0 {
		return pkg.ErrInvalid
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&model.Schedule{}).Where("id IN ?", ids)
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
		if err := tx.Where("schedule_id IN ?", ids).Delete(&model.ScheduleDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Schedule{}).Error
	})
}

// List 管理端行程分页查询
func (r *ScheduleRepository) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	base := r.DB.WithContext(ctx).Model(&model.Schedule{}).
		Joins("JOIN users ON users.id = schedules.user_id")

	if q.Search != "" {
		col, ok := scheduleColumns[q.Field]
		if !ok {
			return nil, pkg.ErrInvalid
		}
		base = base.Where("LOWER("+col+") LIKE LOWER(?)", likePattern(q.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	sortCol, ok := scheduleColumns[q.SortKey]
	if !ok {
		return nil, pkg.ErrInvalid
	}

	rows := []ScheduleRow{}
	err := base.
		Select(scheduleSelect).
		Order(sortCol + " " + pkg.SortDir(q.SortValue)).
		Offset(q.Skip).Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return &pkg.PageResult{Content: rows, TotalElements: total}, nil
}
