package mysql

import (
	"context"

	"Travel_Mate/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// List 待投递的举报事件，按写入顺序取一批
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.ReportOutbox, error) {
	var list []model.ReportOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SuccessUpdate 投递成功
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ReportOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

// RetryUpdate 投递失败，记一次重试
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ReportOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// ResetFailed 把失败的事件重新置回待投递，重试次数保留
func (r *OutboxRepository) ResetFailed(ctx context.Context, maxRetry int) error {
	return r.DB.WithContext(ctx).Model(&model.ReportOutbox{}).
		Where("status = 2 AND retry < ?", maxRetry).
		Update("status", 0).Error
}
