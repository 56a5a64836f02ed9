package mysql

import (
	"context"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"

	"gorm.io/gorm"
)

type BlockRepository struct {
	DB *gorm.DB
}

// BlockRow 拉黑关系投影行，两侧昵称都带出来
type BlockRow struct {
	BlockID      uint64 `json:"blockId"`
	UserID       uint64 `json:"userId"`
	UserNickname string `json:"userNickname"`
	BlockedID    uint64 `json:"blockedId"`
	Nickname     string `json:"nickname"`
	BlockDate    string `json:"blockDate"`
}

var blockColumns = map[string]string{
	"blockId":      "blocks.id",
	"userId":       "blocks.user_id",
	"userNickname": "u1.nickname",
	"blockedId":    "blocks.blocked_id",
	"nickname":     "u2.nickname",
	"blockDate":    "blocks.block_date",
}

const blockSelect = "blocks.id AS block_id, blocks.user_id, u1.nickname AS user_nickname, " +
	"blocks.blocked_id, u2.nickname AS nickname, " +
	"DATE_FORMAT(blocks.block_date, '%Y-%m-%d') AS block_date"

func (r *BlockRepository) joined(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.Block{}).
		Joins("JOIN users u1 ON u1.id = blocks.user_id").
		Joins("JOIN users u2 ON u2.id = blocks.blocked_id")
}

// Create 重复拉黑撞唯一键，翻译成 ErrDuplicate
func (r *BlockRepository) Create(ctx context.Context, b *model.Block) error {
	return translate(r.DB.WithContext(ctx).Create(b).Error)
}

// DeleteByUserAndBlocked 解除拉黑
func (r *BlockRepository) DeleteByUserAndBlocked(ctx context.Context, userID, blockedID uint64) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND blocked_id = ?", userID, blockedID).
		Delete(&model.Block{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// DeleteMany 管理端强制解除，按 block id 批量删除
func (r *BlockRepository) DeleteMany(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return pkg.ErrInvalid
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Block{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return pkg.ErrNotFound
		}
		return tx.Where("id IN ?", ids).Delete(&model.Block{}).Error
	})
}

// ListByUser 我拉黑的用户
func (r *BlockRepository) ListByUser(ctx context.Context, userID uint64) ([]BlockRow, error) {
	rows := []BlockRow{}
	err := r.joined(ctx).
		Select(blockSelect).
		Where("blocks.user_id = ?", userID).
		Order("blocks.block_date DESC").
		Scan(&rows).Error
	return rows, err
}

// List 管理端拉黑关系分页查询
func (r *BlockRepository) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	base := r.joined(ctx)

	if q.Search != "" {
		col, ok := blockColumns[q.Field]
		if !ok {
			return nil, pkg.ErrInvalid
		}
		base = base.Where("LOWER("+col+") LIKE LOWER(?)", likePattern(q.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	sortCol, ok := blockColumns[q.SortKey]
	if !ok {
		return nil, pkg.ErrInvalid
	}

	rows := []BlockRow{}
	err := base.
		Select(blockSelect).
		Order(sortCol + " " + pkg.SortDir(q.SortValue)).
		Offset(q.Skip).Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return &pkg.PageResult{Content: rows, TotalElements: total}, nil
}
