package model

import "time"

type Schedule struct {
	ID            uint64    `gorm:"primaryKey" json:"scheduleId"`
	UserID        uint64    `gorm:"not null;index" json:"userId"`
	MetroID       string    `gorm:"size:8;not null" json:"metroId"` // 地区编码
	StartDate     time.Time `gorm:"not null" json:"-"`
	EndDate       time.Time `gorm:"not null" json:"-"`
	ScheduleTitle string    `gorm:"size:30;not null" json:"scheduleTitle"`
	RegisterDate  time.Time `gorm:"autoCreateTime" json:"-"`
}

// ScheduleDetail 行程明细，编辑时整批替换
type ScheduleDetail struct {
	ID            uint64    `gorm:"primaryKey" json:"scheduleDetailId"`
	ScheduleID    uint64    `gorm:"not null;index" json:"scheduleId"`
	ScheduleOrder int       `gorm:"not null" json:"scheduleOrder"`
	StartTime     string    `gorm:"size:5;not null;default:'06:00'" json:"startTime"` // HH:mm
	EndTime       string    `gorm:"size:5;not null;default:'07:00'" json:"endTime"`   // HH:mm
	ContentID     string    `gorm:"size:16;not null" json:"contentId"`                // 旅游 API 的景点 id
	RegisterTime  time.Time `gorm:"autoCreateTime" json:"registerTime"`
}
