// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/careerlens/internal/email"
	"github.com/ecodeclub/careerlens/internal/user/internal/domain"
	"github.com/ecodeclub/careerlens/internal/user/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrUserDuplicate      = repository.ErrUserDuplicate
	ErrInvalidCredentials = errors.New("邮箱或者密码错误")
	ErrUserBlocked        = errors.New("账号已经被封禁")
	ErrInvalidResetToken  = errors.New("重置令牌无效或者已经过期")
	ErrInvalidUserInfo    = errors.New("用户信息不合法")
)

const minPasswordLen = 6

type Config struct {
	// 注册的时候默认的头像
	DefaultPictureURL string
	// 重置密码链接的前缀
	FrontendURL   string
	ResetTokenTTL time.Duration
}

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go -typed UserService
type UserService interface {
	Register(ctx context.Context, u domain.User) (domain.User, error)
	Login(ctx context.Context, addr, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// EditProfile 空字段保留原来的值
	EditProfile(ctx context.Context, u domain.User) (domain.User, error)
	UpdatePicture(ctx context.Context, id int64, url string) error
	ForgotPassword(ctx context.Context, addr string) error
	ResetPassword(ctx context.Context, token, password string) error
	FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}

type userService struct {
	repo    repository.UserRepository
	mailSvc email.Service
	cfg     Config
	logger  *elog.Component
}

func NewUserService(repo repository.UserRepository, mailSvc email.Service, cfg Config) UserService {
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = 15 * time.Minute
	}
	return &userService{
		repo:    repo,
		mailSvc: mailSvc,
		cfg:     cfg,
		logger:  elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = domain.RoleApplicant
	}
	if u.Name == "" || !validEmail(u.Email) ||
		utf8.RuneCountInString(u.Password) < minPasswordLen || !u.Role.CanRegister() {
		return domain.User{}, ErrInvalidUserInfo
	}
	_, err := svc.repo.FindByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return domain.User{}, ErrUserDuplicate
	case !errors.Is(err, ErrUserNotFound):
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("加密密码失败 %w", err)
	}
	u.Password = string(hash)
	u.Blocked = false
	u.Profile.PictureURL = svc.cfg.DefaultPictureURL
	u.Id, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Login(ctx context.Context, addr, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(addr)))
	if errors.Is(err, ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	if u.Blocked {
		return domain.User{}, ErrUserBlocked
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) EditProfile(ctx context.Context, u domain.User) (domain.User, error) {
	old, err := svc.repo.FindById(ctx, u.Id)
	if err != nil {
		return domain.User{}, err
	}
	old.Name = orDefault(strings.TrimSpace(u.Name), old.Name)
	old.Profile = old.Profile.Merge(u.Profile)
	err = svc.repo.UpdateProfile(ctx, old)
	if err != nil {
		return domain.User{}, err
	}
	return old, nil
}

func (svc *userService) UpdatePicture(ctx context.Context, id int64, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrInvalidUserInfo
	}
	return svc.repo.UpdatePicture(ctx, id, url)
}

func (svc *userService) ForgotPassword(ctx context.Context, addr string) error {
	u, err := svc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(addr)))
	if err != nil {
		return err
	}
	token, err := newResetToken()
	if err != nil {
		return err
	}
	expire := time.Now().Add(svc.cfg.ResetTokenTTL).UnixMilli()
	err = svc.repo.SetResetToken(ctx, u.Id, hashToken(token), expire)
	if err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/reset-password/%s", strings.TrimSuffix(svc.cfg.FrontendURL, "/"), token)
	body := fmt.Sprintf(`<h3>Password Reset Request</h3>
<p>Click the link below to reset your password:</p>
<a href="%s" target="_blank">%s</a>
<p>The link expires in %d minutes.</p>`, resetURL, resetURL, int(svc.cfg.ResetTokenTTL.Minutes()))
	return svc.mailSvc.SendMail(ctx, email.Mail{
		To:      u.Email,
		Subject: "Password Reset - Career Lens",
		Body:    []byte(body),
	})
}

func (svc *userService) ResetPassword(ctx context.Context, token, password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return ErrInvalidUserInfo
	}
	u, err := svc.repo.FindByResetToken(ctx, hashToken(token), time.Now().UnixMilli())
	if errors.Is(err, ErrUserNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("加密密码失败 %w", err)
	}
	return svc.repo.ResetPassword(ctx, u.Id, string(hash))
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.ToMap(us, func(element domain.User) int64 {
		return element.Id
	}), nil
}

func (svc *userService) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	return svc.repo.ClearExpiredResetTokens(ctx, time.Now().UnixMilli())
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("生成重置令牌失败 %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// hashToken 数据库里面只保存 sha256 之后的令牌
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func validEmail(addr string) bool {
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
