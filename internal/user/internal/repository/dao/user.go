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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱已经注册
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, u User) error
	UpdatePicture(ctx context.Context, id int64, url string) error
	SetResetToken(ctx context.Context, id int64, token string, expire int64) error
	// FindByResetToken 只返回还没有过期的
	FindByResetToken(ctx context.Context, token string, now int64) (User, error)
	// ResetPassword 修改密码并且清空重置令牌
	ResetPassword(ctx context.Context, id int64, password string) error
	ClearExpiredResetTokens(ctx context.Context, now int64) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, ErrUserDuplicate
	}
	return u.Id, errors.Wrap(err, "插入用户失败")
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, errors.Wrapf(err, "查找用户 id=%d", id)
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, errors.Wrap(err, "批量查找用户")
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, errors.Wrapf(err, "查找用户 email=%s", email)
}

func (ud *GORMUserDAO) UpdateProfile(ctx context.Context, u User) error {
	err := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.Id).
		Updates(map[string]any{
			"name":     u.Name,
			"phone":    u.Phone,
			"location": u.Location,
			"headline": u.Headline,
			"about":    u.About,
			"utime":    time.Now().UnixMilli(),
		}).Error
	return errors.Wrapf(err, "更新用户资料 id=%d", u.Id)
}

func (ud *GORMUserDAO) UpdatePicture(ctx context.Context, id int64, url string) error {
	err := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"picture_url": url,
			"utime":       time.Now().UnixMilli(),
		}).Error
	return errors.Wrapf(err, "更新头像 id=%d", id)
}

func (ud *GORMUserDAO) SetResetToken(ctx context.Context, id int64, token string, expire int64) error {
	err := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token":  token,
			"reset_expire": expire,
			"utime":        time.Now().UnixMilli(),
		}).Error
	return errors.Wrapf(err, "设置重置令牌 id=%d", id)
}

func (ud *GORMUserDAO) FindByResetToken(ctx context.Context, token string, now int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).
		Where("reset_token = ? AND reset_expire > ?", token, now).
		First(&u).Error
	return u, errors.Wrap(err, "按照重置令牌查找用户")
}

func (ud *GORMUserDAO) ResetPassword(ctx context.Context, id int64, password string) error {
	err := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password":     password,
			"reset_token":  "",
			"reset_expire": 0,
			"utime":        time.Now().UnixMilli(),
		}).Error
	return errors.Wrapf(err, "重置密码 id=%d", id)
}

func (ud *GORMUserDAO) ClearExpiredResetTokens(ctx context.Context, now int64) (int64, error) {
	res := ud.db.WithContext(ctx).Model(&User{}).
		Where("reset_token <> '' AND reset_expire <= ?", now).
		Updates(map[string]any{
			"reset_token":  "",
			"reset_expire": 0,
			"utime":        now,
		})
	return res.RowsAffected, errors.Wrap(res.Error, "清理过期的重置令牌")
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(256)"`
	Email    string `gorm:"type:varchar(256);uniqueIndex"`
	Password string
	Role     string `gorm:"type:varchar(32)"`
	Blocked  bool

	Phone      string `gorm:"type:varchar(32)"`
	Location   string `gorm:"type:varchar(256)"`
	Headline   string `gorm:"type:varchar(512)"`
	About      string `gorm:"type:text"`
	PictureURL string `gorm:"column:picture_url;type:varchar(1024)"`

	// sha256 之后的重置令牌
	ResetToken  string `gorm:"type:varchar(64);index"`
	ResetExpire int64

	Ctime int64
	Utime int64
}
