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

type fakeScheduleRepo struct {
	schedules   map[uint64]*model.Schedule
	lastDetails []model.ScheduleDetail
	deletedIDs  []uint64
	deleteAdmin bool
}

func (f *fakeScheduleRepo) CreateWithDetails(ctx context.Context, s *model.Schedule, details []model.ScheduleDetail) error {
	s.ID = 1
	f.lastDetails = details
	return nil
}

func (f *fakeScheduleRepo) UpdateWithDetails(ctx context.Context, s *model.Schedule, details []model.ScheduleDetail) error {
	f.lastDetails = details
	return nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uint64) (*model.Schedule, error) {
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeScheduleRepo) FindRowByID(ctx context.Context, id uint64) (*mysql.ScheduleRow, error) {
	return &mysql.ScheduleRow{ScheduleID: id}, nil
}

func (f *fakeScheduleRepo) ListByUser(ctx context.Context, userID uint64) ([]mysql.ScheduleRow, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) TitlesByUser(ctx context.Context, userID uint64) ([]mysql.ScheduleTitleRow, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) Details(ctx context.Context, scheduleID uint64) ([]model.ScheduleDetail, error) {
	return []model.ScheduleDetail{}, nil
}

func (f *fakeScheduleRepo) DeleteMany(ctx context.Context, ids []uint64, userID uint64, admin bool) error {
	f.deletedIDs = ids
	f.deleteAdmin = admin
	return nil
}

func (f *fakeScheduleRepo) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return nil, nil
}

func validInput() *ScheduleInput {
	return &ScheduleInput{
		MetroID:       "39",
		StartDate:     "20250801",
		EndDate:       "20250804",
		ScheduleTitle: "제주 여행",
		Details: []DetailInput{
			{ScheduleOrder: 1, ContentID: "126508"},
			{ScheduleOrder: 2, StartTime: "10:00", EndTime: "12:00", ContentID: "264337"},
		},
	}
}

func TestScheduleService_SaveValidation(t *testing.T) {
	svc := &ScheduleService{repo: &fakeScheduleRepo{}}

	in := validInput()
	in.MetroID = "99" // 不存在的地区编码
	_, err := svc.Save(context.Background(), 1, in)
	assert.ErrorIs(t, err, pkg.ErrInvalid)

	in = validInput()
	in.EndDate = "20250701" // 结束早于开始
	_, err = svc.Save(context.Background(), 1, in)
	assert.ErrorIs(t, err, pkg.ErrInvalid)

	in = validInput()
	in.StartDate = "2025-08-01" // 只接受 YYYYMMDD
	_, err = svc.Save(context.Background(), 1, in)
	assert.ErrorIs(t, err, pkg.ErrInvalid)

	in = validInput()
	in.ScheduleTitle = "아주아주아주아주아주아주아주아주아주아주아주아주아주아주아주 긴 제목"
	_, err = svc.Save(context.Background(), 1, in)
	assert.ErrorIs(t, err, pkg.ErrInvalid)
}

func TestScheduleService_SaveDefaultsDetailTimes(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &ScheduleService{repo: repo}

	id, err := svc.Save(context.Background(), 1, validInput())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	require.Len(t, repo.lastDetails, 2)
	// 留空的时段补默认值
	assert.Equal(t, "06:00", repo.lastDetails[0].StartTime)
	assert.Equal(t, "07:00", repo.lastDetails[0].EndTime)
	assert.Equal(t, "10:00", repo.lastDetails[1].StartTime)
}

func TestScheduleService_ViewOwnership(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: map[uint64]*model.Schedule{
		3: {ID: 3, UserID: 7},
	}}
	svc := &ScheduleService{repo: repo}

	_, err := svc.View(context.Background(), 8, 3, false)
	assert.ErrorIs(t, err, pkg.ErrForbidden)

	view, err := svc.View(context.Background(), 7, 3, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), view.Schedule.ScheduleID)

	// 管理员跳过归属检查
	_, err = svc.View(context.Background(), 0, 3, true)
	assert.NoError(t, err)
}

func TestScheduleService_DeleteAdminFlag(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &ScheduleService{repo: repo}

	require.NoError(t, svc.Delete(context.Background(), 7, []uint64{1, 2}))
	assert.False(t, repo.deleteAdmin)

	require.NoError(t, svc.DeleteAdmin(context.Background(), []uint64{3}))
	assert.True(t, repo.deleteAdmin)
	assert.Equal(t, []uint64{3}, repo.deletedIDs)
}
