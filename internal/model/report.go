package model

import "time"

// 举报处理状态
const (
	ReportPending  = 0 // 处理 前
	ReportFalse    = 1 // 虚假举报
	ReportResolved = 2 // 处理完成
)

// Report 对招募帖的举报，(user_id, post_id) 唯一，重复举报会触发 1062
type Report struct {
	ID           uint64    `gorm:"primaryKey" json:"reportId"`
	UserID       uint64    `gorm:"not null;index;uniqueIndex:uk_user_post" json:"userId"`
	PostID       uint64    `gorm:"not null;index;uniqueIndex:uk_user_post" json:"postId"`
	ReportType   string    `gorm:"size:2;not null" json:"reportType"` // R1~R4
	ReportDetail string    `gorm:"size:255" json:"reportDetail"`
	ReportFalse  int       `gorm:"not null;default:0" json:"reportFalse"`
	ReportDate   time.Time `gorm:"autoCreateTime" json:"-"`
}

// ReportOutbox 举报事件监控表，由 relayer 异步投递到 kafka
type ReportOutbox struct {
	ID        uint64    `gorm:"primaryKey"`
	ReportID  uint64    `gorm:"not null"`
	EventType string    `gorm:"size:16;not null"` // report / cancel
	Payload   string    `gorm:"type:json;not null"`
	Status    int8      `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReportOutbox) TableName() string { return "report_outbox" }

func ReportTypeLabel(t string) string {
	switch t {
	case "R1":
		return "음란"
	case "R2":
		return "폭력"
	case "R3":
		return "욕설"
	default:
		return "기타"
	}
}

func ReportFalseLabel(state int) string {
	switch state {
	case ReportPending:
		return "처리 전"
	case ReportFalse:
		return "허위 신고"
	case ReportResolved:
		return "처리 완료"
	default:
		return "중복 신고"
	}
}
