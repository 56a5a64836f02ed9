package mysql

import (
	"context"
	"encoding/json"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

type reportScan struct {
	ReportID     uint64
	UserID       uint64
	Nickname     string
	PostID       uint64
	PostTitle    string
	ReportType   string
	ReportDetail string
	ReportFalse  int
	ReportDate   string
}

// ReportRow 举报列表投影行，类型和处理状态转换成展示文案
type ReportRow struct {
	ReportID     uint64 `json:"reportId"`
	UserID       uint64 `json:"userId"`
	Nickname     string `json:"nickname"`
	PostID       uint64 `json:"postId"`
	PostTitle    string `json:"postTitle"`
	ReportType   string `json:"reportType"`
	ReportDetail string `json:"reportDetail"`
	ReportFalse  string `json:"reportFalse"`
	ReportDate   string `json:"reportDate"`
}

var reportColumns = map[string]string{
	"reportId":    "reports.id",
	"userId":      "reports.user_id",
	"nickname":    "users.nickname",
	"postId":      "reports.post_id",
	"postTitle":   "posts.post_title",
	"reportType":  "reports.report_type",
	"reportFalse": "reports.report_false",
	"reportDate":  "reports.report_date",
}

const reportSelect = "reports.id AS report_id, reports.user_id, users.nickname, " +
	"reports.post_id, posts.post_title, reports.report_type, reports.report_detail, " +
	"reports.report_false, DATE_FORMAT(reports.report_date, '%Y%m%d') AS report_date"

func toReportRow(s reportScan) ReportRow {
	return ReportRow{
		ReportID:     s.ReportID,
		UserID:       s.UserID,
		Nickname:     s.Nickname,
		PostID:       s.PostID,
		PostTitle:    s.PostTitle,
		ReportType:   model.ReportTypeLabel(s.ReportType),
		ReportDetail: s.ReportDetail,
		ReportFalse:  model.ReportFalseLabel(s.ReportFalse),
		ReportDate:   s.ReportDate,
	}
}

func (r *ReportRepository) joined(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.Report{}).
		Joins("JOIN users ON users.id = reports.user_id").
		Joins("JOIN posts ON posts.id = reports.post_id")
}

// Create 举报落库、被举报人计数、outbox 三个写入同一事务。
// 同一用户重复举报同一帖子会撞唯一键，翻译成 ErrDuplicate。
func (r *ReportRepository) Create(ctx context.Context, report *model.Report, reportedUserID uint64) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).
			Where("id = ?", reportedUserID).
			UpdateColumn("report_count", gorm.Expr("report_count + 1")).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "report", report)
	})
	return translate(err)
}

// DeleteByUserAndPost 取消举报，计数回滚并记一条 cancel 事件
func (r *ReportRepository) DeleteByUserAndPost(ctx context.Context, userID, postID, reportedUserID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var report model.Report
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&report).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&model.Report{}, report.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).
			Where("id = ? AND report_count > 0", reportedUserID).
			UpdateColumn("report_count", gorm.Expr("report_count - 1")).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "cancel", &report)
	})
}

// insertOutbox 举报事件进监控表，由 relayer 异步投递
func insertOutbox(tx *gorm.DB, eventType string, report *model.Report) error {
	payload, err := json.Marshal(map[string]any{
		"reportId":   report.ID,
		"userId":     report.UserID,
		"postId":     report.PostID,
		"reportType": report.ReportType,
		"event":      eventType,
	})
	if err != nil {
		return err
	}
	return tx.Create(&model.ReportOutbox{
		ReportID:  report.ID,
		EventType: eventType,
		Payload:   string(payload),
	}).Error
}

// ListByUser 我提交的举报
func (r *ReportRepository) ListByUser(ctx context.Context, userID uint64) ([]ReportRow, error) {
	scans := []reportScan{}
	err := r.joined(ctx).
		Select(reportSelect).
		Where("reports.user_id = ?", userID).
		Order("reports.report_date DESC").
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	rows := make([]ReportRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, toReportRow(s))
	}
	return rows, nil
}

// UpdateReportFalse 管理端更新举报处理状态
func (r *ReportRepository) UpdateReportFalse(ctx context.Context, reportID uint64, state int) error {
	res := r.DB.WithContext(ctx).Model(&model.Report{}).
		Where("id = ?", reportID).
		Update("report_false", state)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// List 管理端举报分页查询
func (r *ReportRepository) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	base := r.joined(ctx)

	if q.Search != "" {
		col, ok := reportColumns[q.Field]
		if !ok {
			return nil, pkg.ErrInvalid
		}
		base = base.Where("LOWER("+col+") LIKE LOWER(?)", likePattern(q.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	sortCol, ok := reportColumns[q.SortKey]
	if !ok {
		return nil, pkg.ErrInvalid
	}

	scans := []reportScan{}
	err := base.
		Select(reportSelect).
		Order(sortCol + " " + pkg.SortDir(q.SortValue)).
		Offset(q.Skip).Limit(q.Limit).
		Scan(&scans).Error
	if err != nil {
		return nil, err
	}
	rows := make([]ReportRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, toReportRow(s))
	}
	return &pkg.PageResult{Content: rows, TotalElements: total}, nil
}
