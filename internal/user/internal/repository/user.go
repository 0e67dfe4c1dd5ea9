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

package repository

import (
	"context"

	"github.com/ecodeclub/careerlens/internal/user/internal/domain"
	"github.com/ecodeclub/careerlens/internal/user/internal/repository/cache"
	"github.com/ecodeclub/careerlens/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrRecordNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// FindByEmail 登录用，会带上密码
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
	UpdatePicture(ctx context.Context, id int64, url string) error
	SetResetToken(ctx context.Context, id int64, token string, expire int64) error
	FindByResetToken(ctx context.Context, token string, now int64) (domain.User, error)
	ResetPassword(ctx context.Context, id int64, password string) error
	ClearExpiredResetTokens(ctx context.Context, now int64) (int64, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	if err = ur.cache.Set(ctx, u); err != nil {
		ur.logger.Warn("缓存用户失败", elog.Int64("uid", id), elog.FieldErr(err))
	}
	u.Password = ""
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		u := ur.entityToDomain(src)
		u.Password = ""
		return u
	}), nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) UpdateProfile(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateProfile(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) UpdatePicture(ctx context.Context, id int64, url string) error {
	err := ur.dao.UpdatePicture(ctx, id, url)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) SetResetToken(ctx context.Context, id int64, token string, expire int64) error {
	return ur.dao.SetResetToken(ctx, id, token, expire)
}

func (ur *CachedUserRepository) FindByResetToken(ctx context.Context, token string, now int64) (domain.User, error) {
	u, err := ur.dao.FindByResetToken(ctx, token, now)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) ResetPassword(ctx context.Context, id int64, password string) error {
	err := ur.dao.ResetPassword(ctx, id, password)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) ClearExpiredResetTokens(ctx context.Context, now int64) (int64, error) {
	return ur.dao.ClearExpiredResetTokens(ctx, now)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:         u.Id,
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.Password,
		Role:       u.Role.String(),
		Blocked:    u.Blocked,
		Phone:      u.Profile.Phone,
		Location:   u.Profile.Location,
		Headline:   u.Profile.Headline,
		About:      u.Profile.About,
		PictureURL: u.Profile.PictureURL,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Name:     ue.Name,
		Email:    ue.Email,
		Password: ue.Password,
		Role:     domain.Role(ue.Role),
		Blocked:  ue.Blocked,
		Profile: domain.Profile{
			Phone:      ue.Phone,
			Location:   ue.Location,
			Headline:   ue.Headline,
			About:      ue.About,
			PictureURL: ue.PictureURL,
		},
		Ctime: ue.Ctime,
		Utime: ue.Utime,
	}
}
