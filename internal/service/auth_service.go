package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
)

// 登录前置检查的处罚错误，handler 按种类映射响应码
var (
	ErrSuspended30        = errors.New("suspended for 30 days")
	ErrSuspendedPermanent = errors.New("suspended permanently")
	ErrWithdrawn          = errors.New("withdrawn account")
)

type authUserRepo interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, email, token string) error
}

type AuthService struct {
	repo   authUserRepo
	tokens *pkg.TokenManager
}

func NewAuthService(tokens *pkg.TokenManager) *AuthService {
	return &AuthService{
		repo:   &mysql.UserRepository{DB: mysql.DB},
		tokens: tokens,
	}
}

// Join 注册。必填项缺失时把缺的字段名都带回去。
func (s *AuthService) Join(ctx context.Context, user *model.User) error {
	missing := []string{}
	if user.Email == "" {
		missing = append(missing, "email")
	}
	if user.Username == "" {
		missing = append(missing, "username")
	}
	if user.Nickname == "" {
		missing = append(missing, "nickname")
	}
	if user.Password == "" {
		missing = append(missing, "password")
	}
	if user.Birth == "" {
		missing = append(missing, "birth")
	}
	if user.Gender == "" {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", pkg.ErrInvalid, strings.Join(missing, ", "))
	}
	if _, err := pkg.ParseYMD(user.Birth); err != nil {
		return fmt.Errorf("%w: birth", pkg.ErrInvalid)
	}
	if user.Gender != "m" && user.Gender != "f" {
		return fmt.Errorf("%w: gender", pkg.ErrInvalid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.Role = model.RoleUser

	return s.repo.Create(ctx, user)
}

// Login 校验凭证并做处罚等级前置检查。
// ROLE_A（7 天停用）仍允许登录，写操作在各自入口处拦。
func (s *AuthService) Login(ctx context.Context, email, password string) (*pkg.Pair, *model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, nil, pkg.ErrUnauthorized
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, pkg.ErrUnauthorized
	}

	switch user.Role {
	case model.RoleBan30:
		return nil, nil, ErrSuspended30
	case model.RoleBanFull:
		return nil, nil, ErrSuspendedPermanent
	case model.RoleWithdrawn:
		return nil, nil, ErrWithdrawn
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, nil, err
	}
	// 最新的 refresh 覆盖旧的，同一账号旧会话自然失效
	if err := s.repo.UpdateRefreshToken(ctx, user.Email, pair.Refresh); err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Reissue 用 refresh 换新 access。声明不从旧令牌里抄，
// 从最新的用户行重建，等级调整立即生效。
func (s *AuthService) Reissue(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.repo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return "", pkg.ErrRefreshInvalid
		}
		return "", err
	}
	// 只认数据库里存的那一枚
	if user.RefreshToken != refreshToken {
		return "", pkg.ErrRefreshInvalid
	}
	if model.Suspended(user.Role) {
		return "", pkg.ErrRefreshInvalid
	}

	return s.tokens.MakeAccess(user.ID, user.Email, user.Role)
}
