package service

import (
	"context"
	"fmt"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"
)

type blockRepo interface {
	Create(ctx context.Context, b *model.Block) error
	DeleteByUserAndBlocked(ctx context.Context, userID, blockedID uint64) error
	DeleteMany(ctx context.Context, ids []uint64) error
	ListByUser(ctx context.Context, userID uint64) ([]mysql.BlockRow, error)
	List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error)
}

type blockUserRepo interface {
	FindByID(ctx context.Context, id uint64) (*model.User, error)
}

type BlockService struct {
	repo  blockRepo
	users blockUserRepo
}

func NewBlockService() *BlockService {
	return &BlockService{
		repo:  &mysql.BlockRepository{DB: mysql.DB},
		users: &mysql.UserRepository{DB: mysql.DB},
	}
}

// Add 拉黑用户。不能拉黑自己，重复拉黑返回 ErrDuplicate。
func (s *BlockService) Add(ctx context.Context, userID, blockedID uint64) error {
	if blockedID == 0 {
		return fmt.Errorf("%w: blockedId", pkg.ErrInvalid)
	}
	if userID == blockedID {
		return fmt.Errorf("%w: cannot block self", pkg.ErrInvalid)
	}
	if _, err := s.users.FindByID(ctx, blockedID); err != nil {
		return err
	}
	return s.repo.Create(ctx, &model.Block{UserID: userID, BlockedID: blockedID})
}

// Unblock 解除拉黑
func (s *BlockService) Unblock(ctx context.Context, userID, blockedID uint64) error {
	return s.repo.DeleteByUserAndBlocked(ctx, userID, blockedID)
}

func (s *BlockService) ListMine(ctx context.Context, userID uint64) ([]mysql.BlockRow, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UnblockAdmin 管理端按 block id 批量强制解除
func (s *BlockService) UnblockAdmin(ctx context.Context, ids []uint64) error {
	return s.repo.DeleteMany(ctx, ids)
}

// List 管理端拉黑关系列表
func (s *BlockService) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return s.repo.List(ctx, q)
}
