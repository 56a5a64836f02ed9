package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
)

type userRepo interface {
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByNickname(ctx context.Context, nickname string) (*model.User, error)
	UpdatePassword(ctx context.Context, email, hashed string) error
	UpdateProfile(ctx context.Context, email, userpic, nickname, intro string) error
	UpdateRole(ctx context.Context, userID uint64, role string) error
	List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error)
}

type UserService struct {
	repo userRepo
	smtp pkg.SMTPConfig
	// 发邮件走注入的函数，测试里替换掉
	sendMail func(cfg pkg.SMTPConfig, to, subject, html string) error
}

func NewUserService(smtp pkg.SMTPConfig) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: mysql.DB},
		smtp:     smtp,
		sendMail: pkg.SendEmail,
	}
}

// Profile 我的信息
func (s *UserService) Profile(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// CheckPassword 修改密码前的本人确认
func (s *UserService) CheckPassword(ctx context.Context, email, password string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return pkg.ErrUnauthorized
	}
	return nil
}

// UpdatePassword 新密码不能和旧密码相同
func (s *UserService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password", pkg.ErrInvalid)
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(newPassword)) == nil {
		return pkg.ErrSamePassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, email, string(hash))
}

// UpdateProfile 头像、昵称、自我介绍。昵称被别人占用时拒绝。
func (s *UserService) UpdateProfile(ctx context.Context, email, userpic, nickname, intro string) error {
	if nickname == "" {
		return fmt.Errorf("%w: nickname", pkg.ErrInvalid)
	}
	owner, err := s.repo.FindByNickname(ctx, nickname)
	if err != nil && !errors.Is(err, pkg.ErrNotFound) {
		return err
	}
	if err == nil && owner.Email != email {
		return pkg.ErrDuplicate
	}
	return s.repo.UpdateProfile(ctx, email, userpic, nickname, intro)
}

// ListUsers 管理端用户列表
func (s *UserService) ListUsers(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return s.repo.List(ctx, q)
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

var validRoles = map[string]bool{
	model.RoleUser:      true,
	model.RoleAdmin:     true,
	model.RoleBan7:      true,
	model.RoleBan30:     true,
	model.RoleBanFull:   true,
	model.RoleWithdrawn: true,
}

// UpdateRole 管理端调整用户等级。调成处罚等级时异步发通知邮件，
// 邮件失败不影响等级变更本身。
func (s *UserService) UpdateRole(ctx context.Context, userID uint64, role string) error {
	if !validRoles[role] {
		return fmt.Errorf("%w: role", pkg.ErrInvalid)
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	if label := pkg.SuspensionLabel(role); label != "" && s.smtp.Host != "" {
		go func(to, nickname, label string) {
			html := pkg.SuspensionHTML(nickname, label)
			if err := s.sendMail(s.smtp, to, "계정 상태 변경 안내", html); err != nil {
				log.Printf("suspension mail to %s err: %v", to, err)
			}
		}(user.Email, user.Nickname, label)
	}
	return nil
}
