package model

import "time"

// Block 用户拉黑关系，(user_id, blocked_id) 唯一
type Block struct {
	ID        uint64    `gorm:"primaryKey" json:"blockId"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_user_blocked" json:"userId"`
	BlockedID uint64    `gorm:"not null;index;uniqueIndex:uk_user_blocked" json:"blockedId"`
	BlockDate time.Time `gorm:"autoCreateTime" json:"-"`
}
