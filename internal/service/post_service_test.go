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

type fakePostRepo struct {
	posts           map[uint64]*model.Post
	created         []*model.Post
	views           []uint64
	recruit         map[uint64]bool
	deleted         []uint64
	lastDeleteAdmin bool
	lastGuest       struct {
		sortCol, metroID, search string
		skip, limit              int
	}
}

func (f *fakePostRepo) Create(ctx context.Context, p *model.Post) error {
	p.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	if p, ok := f.posts[id]; ok {
		return p, nil
	}
	return nil, pkg.ErrNotFound
}

func (f *fakePostRepo) ListByUser(ctx context.Context, userID uint64) ([]mysql.PostRow, error) {
	return nil, nil
}

func (f *fakePostRepo) ListGuest(ctx context.Context, sortCol, metroID, search string, skip, limit int) (*pkg.PageResult, error) {
	f.lastGuest.sortCol = sortCol
	f.lastGuest.metroID = metroID
	f.lastGuest.search = search
	f.lastGuest.skip = skip
	f.lastGuest.limit = limit
	return &pkg.PageResult{Content: []mysql.PostRow{}, TotalElements: 0}, nil
}

func (f *fakePostRepo) DetailRow(ctx context.Context, userID, postID uint64) (*mysql.PostRow, error) {
	return &mysql.PostRow{PostID: postID, UserID: userID}, nil
}

func (f *fakePostRepo) IncrementView(ctx context.Context, postID uint64) error {
	f.views = append(f.views, postID)
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, postID uint64, title, content, pic string) error {
	return nil
}

func (f *fakePostRepo) UpdateRecruit(ctx context.Context, postID uint64, recruiting bool) error {
	if f.recruit == nil {
		f.recruit = map[uint64]bool{}
	}
	f.recruit[postID] = recruiting
	return nil
}

func (f *fakePostRepo) UpdateExposure(ctx context.Context, postID uint64, exposed bool) error {
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, postID uint64) error {
	f.deleted = append(f.deleted, postID)
	return nil
}

// 和真实仓储一样先验证整批归属，再一次性删除
func (f *fakePostRepo) DeleteMany(ctx context.Context, ids []uint64, userID uint64, admin bool) error {
	f.lastDeleteAdmin = admin
	for _, id := range ids {
		p, ok := f.posts[id]
		if !ok || (!admin && p.UserID != userID) {
			return pkg.ErrNotFound
		}
	}
	for _, id := range ids {
		delete(f.posts, id)
		f.deleted = append(f.deleted, id)
	}
	return nil
}

func (f *fakePostRepo) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return nil, nil
}

type fakePostScheduleRepo struct {
	schedules map[uint64]*model.Schedule
}

func (f *fakePostScheduleRepo) FindByID(ctx context.Context, id uint64) (*model.Schedule, error) {
	if s, ok := f.schedules[id]; ok {
		return s, nil
	}
	return nil, pkg.ErrNotFound
}

func newPostService(repo *fakePostRepo, schedules *fakePostScheduleRepo) *PostService {
	return &PostService{repo: repo, schedules: schedules}
}

func TestPostService_CreateMissingFields(t *testing.T) {
	svc := newPostService(&fakePostRepo{}, &fakePostScheduleRepo{})

	_, err := svc.Create(context.Background(), 1, &PostInput{PostTitle: "같이 가요"})
	require.ErrorIs(t, err, pkg.ErrInvalid)
	assert.Contains(t, err.Error(), "scheduleId")
	assert.Contains(t, err.Error(), "postContent")
	assert.Contains(t, err.Error(), "personnel")
	assert.NotContains(t, err.Error(), "postTitle")
}

func TestPostService_CreateForeignSchedule(t *testing.T) {
	schedules := &fakePostScheduleRepo{schedules: map[uint64]*model.Schedule{
		10: {ID: 10, UserID: 99},
	}}
	svc := newPostService(&fakePostRepo{}, schedules)

	in := &PostInput{ScheduleID: 10, PostTitle: "t", PostContent: "c", Personnel: 3}
	_, err := svc.Create(context.Background(), 1, in)
	assert.ErrorIs(t, err, pkg.ErrForbidden)
}

func TestPostService_Create(t *testing.T) {
	repo := &fakePostRepo{}
	schedules := &fakePostScheduleRepo{schedules: map[uint64]*model.Schedule{
		10: {ID: 10, UserID: 1},
	}}
	svc := newPostService(repo, schedules)

	in := &PostInput{ScheduleID: 10, PostTitle: "제주 동행 구해요", PostContent: "3박 4일", Personnel: 3}
	id, err := svc.Create(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint64(1), repo.created[0].UserID)
}

func TestPostService_ListGuestSortWhitelist(t *testing.T) {
	repo := &fakePostRepo{}
	svc := newPostService(repo, &fakePostScheduleRepo{})

	_, err := svc.ListGuest(context.Background(), "nickname", "", "", 0, 12)
	assert.ErrorIs(t, err, pkg.ErrInvalid)

	_, err = svc.ListGuest(context.Background(), "viewCount", "1", "바다", 2, 12)
	require.NoError(t, err)
	assert.Equal(t, "posts.view_count", repo.lastGuest.sortCol)
	// page 从 0 起
	assert.Equal(t, 24, repo.lastGuest.skip)
	assert.Equal(t, 12, repo.lastGuest.limit)
}

func TestPostService_DetailGuestHidden(t *testing.T) {
	repo := &fakePostRepo{posts: map[uint64]*model.Post{
		5: {ID: 5, UserID: 2, ExposureStatus: false},
	}}
	svc := newPostService(repo, &fakePostScheduleRepo{})

	// 访客看不到被屏蔽的帖子
	_, err := svc.Detail(context.Background(), 2, 5, true, true)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// 登录查看不受露出状态影响
	_, err = svc.Detail(context.Background(), 2, 5, false, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5}, repo.views)
}

func TestPostService_DetailNoViewCount(t *testing.T) {
	repo := &fakePostRepo{posts: map[uint64]*model.Post{
		5: {ID: 5, UserID: 2, ExposureStatus: true},
	}}
	svc := newPostService(repo, &fakePostScheduleRepo{})

	_, err := svc.Detail(context.Background(), 2, 5, false, false)
	require.NoError(t, err)
	assert.Empty(t, repo.views)
}

func TestPostService_UpdateOwnership(t *testing.T) {
	repo := &fakePostRepo{posts: map[uint64]*model.Post{
		5: {ID: 5, UserID: 2},
	}}
	svc := newPostService(repo, &fakePostScheduleRepo{})

	err := svc.Update(context.Background(), 3, 5, false, "t", "c", "")
	assert.ErrorIs(t, err, pkg.ErrForbidden)

	// 管理员不受归属限制
	err = svc.Update(context.Background(), 3, 5, true, "t", "c", "")
	assert.NoError(t, err)
}

func TestPostService_DeleteMineAtomic(t *testing.T) {
	repo := &fakePostRepo{posts: map[uint64]*model.Post{
		1: {ID: 1, UserID: 7},
		2: {ID: 2, UserID: 7},
		3: {ID: 3, UserID: 8},
	}}
	svc := newPostService(repo, &fakePostScheduleRepo{})

	// 混进一条别人的帖子，整批都不能删
	err := svc.DeleteMine(context.Background(), 7, []uint64{1, 2, 3})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.Empty(t, repo.deleted)
	assert.Len(t, repo.posts, 3)

	require.NoError(t, svc.DeleteMine(context.Background(), 7, []uint64{1, 2}))
	assert.ElementsMatch(t, []uint64{1, 2}, repo.deleted)
	assert.False(t, repo.lastDeleteAdmin)
}

func TestPostService_CompleteToggles(t *testing.T) {
	repo := &fakePostRepo{posts: map[uint64]*model.Post{
		5: {ID: 5, UserID: 2, RecruitStatus: true},
	}}
	svc := newPostService(repo, &fakePostScheduleRepo{})

	label, err := svc.Complete(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "모집완료", label)
	assert.False(t, repo.recruit[5])

	_, err = svc.Complete(context.Background(), 9, 5)
	assert.ErrorIs(t, err, pkg.ErrForbidden)
}
