package model

import "time"

// Post 同行招募帖，引用一条行程
type Post struct {
	ID             uint64    `gorm:"primaryKey" json:"postId"`
	ScheduleID     uint64    `gorm:"not null;index" json:"scheduleId"`
	UserID         uint64    `gorm:"not null;index" json:"userId"`
	PostTitle      string    `gorm:"size:200;not null" json:"postTitle"`
	PostContent    string    `gorm:"type:text;not null" json:"postContent"`
	Personnel      int       `gorm:"not null" json:"personnel"`
	PostPic        string    `gorm:"size:255" json:"postPic"`
	RecruitStatus  bool      `gorm:"not null;default:true" json:"recruitStatus"`
	ViewCount      int64     `gorm:"not null;default:0" json:"viewCount"`
	ExposureStatus bool      `gorm:"not null;default:true" json:"exposureStatus"`
	PostDate       time.Time `gorm:"autoCreateTime" json:"-"`
}

func RecruitLabel(recruiting bool) string {
	if recruiting {
		return "모집중"
	}
	return "모집완료"
}

func ExposureLabel(exposed bool) string {
	if exposed {
		return "노출중"
	}
	return "노출차단"
}
