package service

import (
	"context"
	"testing"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlockRepo struct {
	blocks map[[2]uint64]bool
}

func (f *fakeBlockRepo) Create(ctx context.Context, b *model.Block) error {
	key := [2]uint64{b.UserID, b.BlockedID}
	if f.blocks[key] {
		return pkg.ErrDuplicate
	}
	f.blocks[key] = true
	return nil
}

func (f *fakeBlockRepo) DeleteByUserAndBlocked(ctx context.Context, userID, blockedID uint64) error {
	key := [2]uint64{userID, blockedID}
	if !f.blocks[key] {
		return pkg.ErrNotFound
	}
	delete(f.blocks, key)
	return nil
}

func (f *fakeBlockRepo) DeleteMany(ctx context.Context, ids []uint64) error { return nil }

func (f *fakeBlockRepo) ListByUser(ctx context.Context, userID uint64) ([]mysql.BlockRow, error) {
	return nil, nil
}

func (f *fakeBlockRepo) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return nil, nil
}

type fakeBlockUserRepo struct {
	ids map[uint64]bool
}

func (f *fakeBlockUserRepo) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if f.ids[id] {
		return &model.User{ID: id}, nil
	}
	return nil, pkg.ErrNotFound
}

func newBlockService() *BlockService {
	return &BlockService{
		repo:  &fakeBlockRepo{blocks: map[[2]uint64]bool{}},
		users: &fakeBlockUserRepo{ids: map[uint64]bool{1: true, 2: true}},
	}
}

func TestBlockService_AddSelf(t *testing.T) {
	svc := newBlockService()
	err := svc.Add(context.Background(), 1, 1)
	assert.ErrorIs(t, err, pkg.ErrInvalid)
}

func TestBlockService_AddUnknownUser(t *testing.T) {
	svc := newBlockService()
	err := svc.Add(context.Background(), 1, 42)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBlockService_AddDuplicate(t *testing.T) {
	svc := newBlockService()
	require.NoError(t, svc.Add(context.Background(), 1, 2))
	// 重复拉黑同一个人
	err := svc.Add(context.Background(), 1, 2)
	assert.ErrorIs(t, err, pkg.ErrDuplicate)
}

func TestBlockService_Unblock(t *testing.T) {
	svc := newBlockService()
	require.NoError(t, svc.Add(context.Background(), 1, 2))
	require.NoError(t, svc.Unblock(context.Background(), 1, 2))

	err := svc.Unblock(context.Background(), 1, 2)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
