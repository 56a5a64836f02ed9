package service

import (
	"context"
	"fmt"
	"time"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"
)

type scheduleRepo interface {
	CreateWithDetails(ctx context.Context, s *model.Schedule, details []model.ScheduleDetail) error
	UpdateWithDetails(ctx context.Context, s *model.Schedule, details []model.ScheduleDetail) error
	FindByID(ctx context.Context, id uint64) (*model.Schedule, error)
	FindRowByID(ctx context.Context, id uint64) (*mysql.ScheduleRow, error)
	ListByUser(ctx context.Context, userID uint64) ([]mysql.ScheduleRow, error)
	TitlesByUser(ctx context.Context, userID uint64) ([]mysql.ScheduleTitleRow, error)
	Details(ctx context.Context, scheduleID uint64) ([]model.ScheduleDetail, error)
	DeleteMany(ctx context.Context, ids []uint64, userID uint64, admin bool) error
	List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error)
}

type ScheduleService struct {
	repo scheduleRepo
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{
		repo: &mysql.ScheduleRepository{DB: mysql.DB},
	}
}

// ScheduleInput 行程及明细的写入参数，日期 YYYYMMDD
type ScheduleInput struct {
	MetroID       string        `json:"metroId"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	ScheduleTitle string        `json:"scheduleTitle"`
	Details       []DetailInput `json:"details"`
}

type DetailInput struct {
	ScheduleOrder int    `json:"scheduleOrder"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	ContentID     string `json:"contentId"`
}

// ScheduleView 明细页响应：头部 + 按顺序排好的明细
type ScheduleView struct {
	Schedule *mysql.ScheduleRow     `json:"schedule"`
	Details  []model.ScheduleDetail `json:"details"`
}

func (in *ScheduleInput) validate() (start, end time.Time, err error) {
	if in.MetroID == "" || in.ScheduleTitle == "" {
		return start, end, fmt.Errorf("%w: metroId, scheduleTitle", pkg.ErrInvalid)
	}
	if len([]rune(in.ScheduleTitle)) > 30 {
		return start, end, fmt.Errorf("%w: scheduleTitle too long", pkg.ErrInvalid)
	}
	if model.MetroName(in.MetroID) == "" {
		return start, end, fmt.Errorf("%w: metroId", pkg.ErrInvalid)
	}
	start, err = pkg.ParseYMD(in.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("%w: startDate", pkg.ErrInvalid)
	}
	end, err = pkg.ParseYMD(in.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("%w: endDate", pkg.ErrInvalid)
	}
	if end.Before(start) {
		return start, end, fmt.Errorf("%w: endDate before startDate", pkg.ErrInvalid)
	}
	return start, end, nil
}

func (in *ScheduleInput) details() []model.ScheduleDetail {
	details := make([]model.ScheduleDetail, 0, len(in.Details))
	for _, d := range in.Details {
		detail := model.ScheduleDetail{
			ScheduleOrder: d.ScheduleOrder,
			StartTime:     d.StartTime,
			EndTime:       d.EndTime,
			ContentID:     d.ContentID,
		}
		// 时间留空时用默认时段
		if detail.StartTime == "" {
			detail.StartTime = "06:00"
		}
		if detail.EndTime == "" {
			detail.EndTime = "07:00"
		}
		details = append(details, detail)
	}
	return details
}

// Save 新建行程
func (s *ScheduleService) Save(ctx context.Context, userID uint64, in *ScheduleInput) (uint64, error) {
	start, end, err := in.validate()
	if err != nil {
		return 0, err
	}
	schedule := &model.Schedule{
		UserID:        userID,
		MetroID:       in.MetroID,
		StartDate:     start,
		EndDate:       end,
		ScheduleTitle: in.ScheduleTitle,
	}
	if err := s.repo.CreateWithDetails(ctx, schedule, in.details()); err != nil {
		return 0, err
	}
	return schedule.ID, nil
}

// Update 编辑行程，明细整批替换
func (s *ScheduleService) Update(ctx context.Context, userID, scheduleID uint64, in *ScheduleInput) error {
	start, end, err := in.validate()
	if err != nil {
		return err
	}
	schedule := &model.Schedule{
		ID:            scheduleID,
		UserID:        userID,
		MetroID:       in.MetroID,
		StartDate:     start,
		EndDate:       end,
		ScheduleTitle: in.ScheduleTitle,
	}
	return s.repo.UpdateWithDetails(ctx, schedule, in.details())
}

func (s *ScheduleService) ListMine(ctx context.Context, userID uint64) ([]mysql.ScheduleRow, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ScheduleService) Titles(ctx context.Context, userID uint64) ([]mysql.ScheduleTitleRow, error) {
	return s.repo.TitlesByUser(ctx, userID)
}

// View 明细页。非本人且非管理员不可见。
func (s *ScheduleService) View(ctx context.Context, userID, scheduleID uint64, admin bool) (*ScheduleView, error) {
	schedule, err := s.repo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !admin && schedule.UserID != userID {
		return nil, pkg.ErrForbidden
	}
	row, err := s.repo.FindRowByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	details, err := s.repo.Details(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return &ScheduleView{Schedule: row, Details: details}, nil
}

// Delete 批量删除自己的行程
func (s *ScheduleService) Delete(ctx context.Context, userID uint64, ids []uint64) error {
	return s.repo.DeleteMany(ctx, ids, userID, false)
}

// DeleteAdmin 管理端批量删除，不做归属校验
func (s *ScheduleService) DeleteAdmin(ctx context.Context, ids []uint64) error {
	return s.repo.DeleteMany(ctx, ids, 0, true)
}

// List 管理端行程列表
func (s *ScheduleService) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return s.repo.List(ctx, q)
}
