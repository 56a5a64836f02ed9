package model

import "time"

// 用户等级：一般用户、管理员，以及处罚等级（停用 7 天 / 30 天 / 永久 / 已注销）
const (
	RoleUser      = "ROLE_USER"
	RoleAdmin     = "ROLE_ADMIN"
	RoleBan7      = "ROLE_A"
	RoleBan30     = "ROLE_B"
	RoleBanFull   = "ROLE_C"
	RoleWithdrawn = "ROLE_D"
)

type User struct {
	ID           uint64     `gorm:"primaryKey" json:"userId"`
	Email        string     `gorm:"uniqueIndex;size:64;not null" json:"email"`
	Username     string     `gorm:"size:32;not null" json:"username"`
	Nickname     string     `gorm:"uniqueIndex;size:32;not null" json:"nickname"`
	Password     string     `gorm:"size:255;not null" json:"-"`
	Birth        string     `gorm:"size:8;not null" json:"birth"` // YYYYMMDD
	Gender       string     `gorm:"size:1;not null" json:"gender"` // m / f
	Role         string     `gorm:"size:16;not null;default:ROLE_USER" json:"role"`
	ReportCount  int        `gorm:"not null;default:0" json:"reportCount"`
	Userpic      string     `gorm:"size:255" json:"userpic"`
	UserIntro    string     `gorm:"size:100" json:"userIntro"`
	RefreshToken string     `gorm:"size:512" json:"-"`
	RegDate      time.Time  `gorm:"autoCreateTime" json:"regdate"`
	EndDate      *time.Time `json:"endDate,omitempty"` // 注销/停用日期
}

// GenderLabel 性别展示文案
func GenderLabel(g string) string {
	switch g {
	case "m":
		return "남자"
	case "f":
		return "여자"
	default:
		return g
	}
}

// Suspended 登录前置检查使用：ROLE_B 以上禁止登录
func Suspended(role string) bool {
	switch role {
	case RoleBan30, RoleBanFull, RoleWithdrawn:
		return true
	}
	return false
}
