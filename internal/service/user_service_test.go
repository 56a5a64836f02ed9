package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*model.User
	byID      map[uint64]*model.User
	roles     map[uint64]string
	passwords map[string]string
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, hashed string) error {
	if f.passwords == nil {
		f.passwords = map[string]string{}
	}
	f.passwords[email] = hashed
	return nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, email, userpic, nickname, intro string) error {
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID uint64, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.roles == nil {
		f.roles = map[uint64]string{}
	}
	f.roles[userID] = role
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return nil, nil
}

func TestUserService_CheckPassword(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{
		"a@b.c": {Email: "a@b.c", Password: hashOf(t, "pw")},
	}}
	svc := &UserService{repo: repo}

	assert.NoError(t, svc.CheckPassword(context.Background(), "a@b.c", "pw"))
	assert.ErrorIs(t, svc.CheckPassword(context.Background(), "a@b.c", "nope"), pkg.ErrUnauthorized)
}

func TestUserService_UpdatePasswordSame(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{
		"a@b.c": {Email: "a@b.c", Password: hashOf(t, "pw")},
	}}
	svc := &UserService{repo: repo}

	err := svc.UpdatePassword(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, pkg.ErrSamePassword)

	require.NoError(t, svc.UpdatePassword(context.Background(), "a@b.c", "new-pw"))
	// 落库的必须是散列值
	assert.NotEqual(t, "new-pw", repo.passwords["a@b.c"])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.passwords["a@b.c"]), []byte("new-pw")))
}

func TestUserService_UpdateProfileNicknameTaken(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{
		"a@b.c": {Email: "a@b.c", Nickname: "여행자"},
		"x@y.z": {Email: "x@y.z", Nickname: "길동이"},
	}}
	svc := &UserService{repo: repo}

	// 别人占用的昵称
	err := svc.UpdateProfile(context.Background(), "a@b.c", "", "길동이", "")
	assert.ErrorIs(t, err, pkg.ErrDuplicate)

	// 自己现在的昵称可以原样提交
	assert.NoError(t, svc.UpdateProfile(context.Background(), "a@b.c", "", "여행자", ""))
}

func TestUserService_UpdateRole(t *testing.T) {
	user := &model.User{ID: 3, Email: "a@b.c", Nickname: "길동이", Role: model.RoleUser}
	repo := &fakeUserRepo{
		byEmail: map[string]*model.User{"a@b.c": user},
		byID:    map[uint64]*model.User{3: user},
	}

	var mu sync.Mutex
	var sentTo, sentBody string
	svc := &UserService{
		repo: repo,
		smtp: pkg.SMTPConfig{Host: "smtp.test"},
		sendMail: func(cfg pkg.SMTPConfig, to, subject, html string) error {
			mu.Lock()
			defer mu.Unlock()
			sentTo, sentBody = to, html
			return nil
		},
	}

	assert.ErrorIs(t, svc.UpdateRole(context.Background(), 3, "ROLE_X"), pkg.ErrInvalid)

	require.NoError(t, svc.UpdateRole(context.Background(), 3, model.RoleBan30))
	assert.Equal(t, model.RoleBan30, repo.roles[3])

	// 邮件是异步发的
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return sentTo == "a@b.c"
	}, time.Second, 10*time.Millisecond)
	mu.Lock()
	assert.Contains(t, sentBody, "30일 정지")
	assert.Contains(t, sentBody, "길동이")
	mu.Unlock()
}

func TestUserService_UpdateRoleNoMailOnRestore(t *testing.T) {
	user := &model.User{ID: 3, Email: "a@b.c", Role: model.RoleBan7}
	repo := &fakeUserRepo{
		byEmail: map[string]*model.User{"a@b.c": user},
		byID:    map[uint64]*model.User{3: user},
	}

	called := false
	svc := &UserService{
		repo: repo,
		smtp: pkg.SMTPConfig{Host: "smtp.test"},
		sendMail: func(cfg pkg.SMTPConfig, to, subject, html string) error {
			called = true
			return nil
		},
	}

	require.NoError(t, svc.UpdateRole(context.Background(), 3, model.RoleUser))
	time.Sleep(50 * time.Millisecond)
	assert.False(t, called)
}
