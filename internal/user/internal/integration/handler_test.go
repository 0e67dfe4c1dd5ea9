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

package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/ecodeclub/careerlens/internal/email"
	emailmocks "github.com/ecodeclub/careerlens/internal/email/mocks"
	"github.com/ecodeclub/careerlens/internal/test"
	testioc "github.com/ecodeclub/careerlens/internal/test/ioc"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/careerlens/internal/user/internal/domain"
	"github.com/ecodeclub/careerlens/internal/user/internal/errs"
	"github.com/ecodeclub/careerlens/internal/user/internal/integration/startup"
	"github.com/ecodeclub/careerlens/internal/user/internal/repository/cache"
	cachemocks "github.com/ecodeclub/careerlens/internal/user/internal/repository/cache/mocks"
	"github.com/ecodeclub/careerlens/internal/user/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/user/internal/service"
	"github.com/ecodeclub/careerlens/internal/user/internal/web"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	uid               = 123
	defaultPictureURL = "https://cdn.example.com/default.png"
)

var resetLinkRegexp = regexp.MustCompile(`http://localhost:5173/reset-password/([0-9a-f]{64})`)

type HandlerTestSuite struct {
	suite.Suite
	db      *egorm.Component
	module  *user.Module
	mailSvc *emailmocks.MockService
	public  *egin.Component
	private *egin.Component
	// 登录之后写进 context 的 session
	loginSess session.Session
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ctrl := gomock.NewController(s.T())
	c := cachemocks.NewMockUserCache(ctrl)
	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.User{}, cache.ErrKeyNotExist).AnyTimes()
	c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	c.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mailSvc = emailmocks.NewMockService(ctrl)
	s.module = startup.InitModule(s.db, c, s.mailSvc, service.Config{
		DefaultPictureURL: defaultPictureURL,
		FrontendURL:       "http://localhost:5173/",
		ResetTokenTTL:     15 * time.Minute,
	})

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.public = egin.Load("server").Build()
	s.public.Use(func(ctx *gin.Context) {
		ctx.Next()
		if val, ok := ctx.Get(session.CtxSessionKey); ok {
			s.loginSess = val.(session.Session)
		}
	})
	s.module.Hdl.PublicRoutes(s.public.Engine)

	s.private = egin.Load("server").Build()
	s.private.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": "applicant"},
		}))
	})
	s.module.Hdl.PrivateRoutes(s.private.Engine)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("DELETE FROM users").Error
	require.NoError(s.T(), err)
	s.loginSess = nil
}

func (s *HandlerTestSuite) TestRegister() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		req    web.RegisterReq

		wantCode int
		after    func(t *testing.T, resp test.Result[web.Profile])
	}{
		{
			name: "默认注册成求职者",
			req: web.RegisterReq{
				Name:     " Alice ",
				Email:    "Alice@Example.com",
				Password: "secret123",
				Phone:    "9876543210",
				Headline: "Go developer",
			},
			after: func(t *testing.T, resp test.Result[web.Profile]) {
				assert.True(t, resp.Data.Id > 0)
				assert.Equal(t, web.Profile{
					Id:         resp.Data.Id,
					Name:       "Alice",
					Email:      "alice@example.com",
					Role:       "applicant",
					Phone:      "9876543210",
					Headline:   "Go developer",
					PictureURL: defaultPictureURL,
				}, resp.Data)
				var u dao.User
				err := s.db.Where("id = ?", resp.Data.Id).First(&u).Error
				require.NoError(t, err)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
				assert.False(t, u.Blocked)
				assert.True(t, u.Ctime > 0)
			},
		},
		{
			name: "注册成招聘者",
			req: web.RegisterReq{
				Name:     "Bob",
				Email:    "bob@example.com",
				Password: "secret123",
				Role:     "recruiter",
			},
			after: func(t *testing.T, resp test.Result[web.Profile]) {
				assert.Equal(t, "recruiter", resp.Data.Role)
			},
		},
		{
			name: "不能注册管理员",
			req: web.RegisterReq{
				Name:     "Eve",
				Email:    "eve@example.com",
				Password: "secret123",
				Role:     "admin",
			},
			wantCode: errs.InvalidUserInfo.Code,
			after: func(t *testing.T, resp test.Result[web.Profile]) {
				var cnt int64
				err := s.db.Model(&dao.User{}).Where("email = ?", "eve@example.com").Count(&cnt).Error
				require.NoError(t, err)
				assert.Zero(t, cnt)
			},
		},
		{
			name: "邮箱已经注册",
			before: func(t *testing.T) {
				s.newUser(t, 1, "dup@example.com", "secret123", "applicant", false)
			},
			req: web.RegisterReq{
				Name:     "Dup",
				Email:    "DUP@example.com",
				Password: "secret123",
			},
			wantCode: errs.UserDuplicate.Code,
			after:    func(t *testing.T, resp test.Result[web.Profile]) {},
		},
		{
			name: "没有名字",
			req: web.RegisterReq{
				Email:    "noname@example.com",
				Password: "secret123",
			},
			wantCode: errs.InvalidUserInfo.Code,
			after:    func(t *testing.T, resp test.Result[web.Profile]) {},
		},
		{
			name: "邮箱格式不对",
			req: web.RegisterReq{
				Name:     "Bad",
				Email:    "not-an-email",
				Password: "secret123",
			},
			wantCode: errs.InvalidUserInfo.Code,
			after:    func(t *testing.T, resp test.Result[web.Profile]) {},
		},
		{
			name: "密码太短",
			req: web.RegisterReq{
				Name:     "Short",
				Email:    "short@example.com",
				Password: "123",
			},
			wantCode: errs.InvalidUserInfo.Code,
			after:    func(t *testing.T, resp test.Result[web.Profile]) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			if tc.before != nil {
				tc.before(t)
			}
			resp := s.post(t, s.public, "/users/register", tc.req)
			assert.Equal(t, tc.wantCode, resp.Code)
			tc.after(t, resp)
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		req    web.LoginReq

		wantCode int
		wantRole string
	}{
		{
			name: "登录成功",
			before: func(t *testing.T) {
				s.newUser(t, 1, "recruiter@example.com", "secret123", "recruiter", false)
			},
			req: web.LoginReq{
				Email:    "Recruiter@example.com",
				Password: "secret123",
			},
			wantRole: "recruiter",
		},
		{
			name: "密码错误",
			before: func(t *testing.T) {
				s.newUser(t, 1, "a@example.com", "secret123", "applicant", false)
			},
			req: web.LoginReq{
				Email:    "a@example.com",
				Password: "wrong-password",
			},
			wantCode: errs.InvalidCredentials.Code,
		},
		{
			name:   "用户不存在",
			before: func(t *testing.T) {},
			req: web.LoginReq{
				Email:    "nobody@example.com",
				Password: "secret123",
			},
			wantCode: errs.InvalidCredentials.Code,
		},
		{
			name: "被封禁",
			before: func(t *testing.T) {
				s.newUser(t, 1, "blocked@example.com", "secret123", "applicant", true)
			},
			req: web.LoginReq{
				Email:    "blocked@example.com",
				Password: "secret123",
			},
			wantCode: errs.UserBlocked.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			tc.before(t)
			resp := s.post(t, s.public, "/users/login", tc.req)
			assert.Equal(t, tc.wantCode, resp.Code)
			if tc.wantCode != 0 {
				assert.Nil(t, s.loginSess)
				return
			}
			require.NotNil(t, s.loginSess)
			assert.Equal(t, int64(1), s.loginSess.Claims().Uid)
			assert.Equal(t, tc.wantRole, s.loginSess.Claims().Get("role").StringOrDefault(""))
			assert.Equal(t, tc.wantRole, resp.Data.Role)
		})
	}
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	s.newUser(t, uid, "me@example.com", "secret123", "applicant", false)
	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.private.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, web.Profile{
		Id:         uid,
		Name:       "me",
		Email:      "me@example.com",
		Role:       "applicant",
		Location:   "Pune",
		PictureURL: defaultPictureURL,
	}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestProfileNotFound() {
	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.private.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), errs.UserNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestEditProfile() {
	t := s.T()
	s.newUser(t, uid, "me@example.com", "secret123", "applicant", false)
	resp := s.post(t, s.private, "/users/profile", web.EditReq{
		Name:     "New Name",
		Headline: "Senior Go developer",
	})
	require.Zero(t, resp.Code)
	assert.Equal(t, web.Profile{
		Id:         uid,
		Name:       "New Name",
		Email:      "me@example.com",
		Role:       "applicant",
		Location:   "Pune",
		Headline:   "Senior Go developer",
		PictureURL: defaultPictureURL,
	}, resp.Data)

	var u dao.User
	err := s.db.Where("id = ?", uid).First(&u).Error
	require.NoError(t, err)
	assert.Equal(t, "New Name", u.Name)
	// 没有传的字段保持不变
	assert.Equal(t, "Pune", u.Location)
	assert.Equal(t, "Senior Go developer", u.Headline)
}

func (s *HandlerTestSuite) TestUpdatePicture() {
	t := s.T()
	s.newUser(t, uid, "me@example.com", "secret123", "applicant", false)
	resp := s.post(t, s.private, "/users/picture", web.PictureReq{URL: "https://cdn.example.com/me.png"})
	require.Zero(t, resp.Code)
	var u dao.User
	err := s.db.Where("id = ?", uid).First(&u).Error
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/me.png", u.PictureURL)

	resp = s.post(t, s.private, "/users/picture", web.PictureReq{})
	assert.Equal(t, errs.InvalidUserInfo.Code, resp.Code)
}

func (s *HandlerTestSuite) TestLogout() {
	resp := s.post(s.T(), s.private, "/users/logout", nil)
	assert.Zero(s.T(), resp.Code)
	assert.Equal(s.T(), "OK", resp.Msg)
}

func (s *HandlerTestSuite) TestForgotAndResetPassword() {
	t := s.T()
	s.newUser(t, 1, "forgot@example.com", "secret123", "applicant", false)

	// 邮箱不存在
	resp := s.post(t, s.public, "/users/password/forgot", web.ForgotPasswordReq{Email: "nobody@example.com"})
	assert.Equal(t, errs.UserNotFound.Code, resp.Code)

	var sent email.Mail
	s.mailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, mail email.Mail) error {
		sent = mail
		return nil
	})
	resp = s.post(t, s.public, "/users/password/forgot", web.ForgotPasswordReq{Email: "Forgot@example.com"})
	require.Zero(t, resp.Code)
	assert.Equal(t, "forgot@example.com", sent.To)
	matches := resetLinkRegexp.FindStringSubmatch(string(sent.Body))
	require.Len(t, matches, 2)
	token := matches[1]

	// 数据库里面存的是哈希之后的
	var u dao.User
	err := s.db.Where("id = ?", 1).First(&u).Error
	require.NoError(t, err)
	assert.NotEqual(t, token, u.ResetToken)
	assert.Len(t, u.ResetToken, 64)
	assert.True(t, u.ResetExpire > time.Now().UnixMilli())

	// 密码太短
	resp = s.post(t, s.public, "/users/password/reset", web.ResetPasswordReq{Token: token, Password: "1"})
	assert.Equal(t, errs.InvalidUserInfo.Code, resp.Code)

	// 令牌不对
	resp = s.post(t, s.public, "/users/password/reset", web.ResetPasswordReq{Token: "bad", Password: "newsecret"})
	assert.Equal(t, errs.InvalidResetToken.Code, resp.Code)

	resp = s.post(t, s.public, "/users/password/reset", web.ResetPasswordReq{Token: token, Password: "newsecret"})
	require.Zero(t, resp.Code)
	err = s.db.Where("id = ?", 1).First(&u).Error
	require.NoError(t, err)
	assert.Empty(t, u.ResetToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newsecret")))

	// 令牌只能用一次
	resp = s.post(t, s.public, "/users/password/reset", web.ResetPasswordReq{Token: token, Password: "another"})
	assert.Equal(t, errs.InvalidResetToken.Code, resp.Code)

	// 用新密码登录
	lresp := s.post(t, s.public, "/users/login", web.LoginReq{Email: "forgot@example.com", Password: "newsecret"})
	assert.Zero(t, lresp.Code)
}

func (s *HandlerTestSuite) TestResetPasswordExpired() {
	t := s.T()
	s.newUser(t, 1, "expired@example.com", "secret123", "applicant", false)
	sum := sha256.Sum256([]byte("expired-token"))
	hashed := hex.EncodeToString(sum[:])
	err := s.db.Model(&dao.User{}).Where("id = ?", 1).Updates(map[string]any{
		"reset_token":  hashed,
		"reset_expire": time.Now().Add(-time.Minute).UnixMilli(),
	}).Error
	require.NoError(t, err)
	resp := s.post(t, s.public, "/users/password/reset", web.ResetPasswordReq{Token: "expired-token", Password: "newsecret"})
	assert.Equal(t, errs.InvalidResetToken.Code, resp.Code)
}

func (s *HandlerTestSuite) TestClearExpiredResetTokensJob() {
	t := s.T()
	now := time.Now()
	s.newUser(t, 1, "a@example.com", "secret123", "applicant", false)
	s.newUser(t, 2, "b@example.com", "secret123", "applicant", false)
	s.newUser(t, 3, "c@example.com", "secret123", "applicant", false)
	err := s.db.Model(&dao.User{}).Where("id = ?", 1).Updates(map[string]any{
		"reset_token":  "expired",
		"reset_expire": now.Add(-time.Minute).UnixMilli(),
	}).Error
	require.NoError(t, err)
	err = s.db.Model(&dao.User{}).Where("id = ?", 2).Updates(map[string]any{
		"reset_token":  "valid",
		"reset_expire": now.Add(time.Minute).UnixMilli(),
	}).Error
	require.NoError(t, err)

	assert.Equal(t, "ClearExpiredResetTokensJob", s.module.ClearJob.Name())
	err = s.module.ClearJob.Run(context.Background())
	require.NoError(t, err)

	var us []dao.User
	err = s.db.Order("id ASC").Find(&us).Error
	require.NoError(t, err)
	require.Len(t, us, 3)
	assert.Empty(t, us[0].ResetToken)
	assert.Zero(t, us[0].ResetExpire)
	assert.Equal(t, "valid", us[1].ResetToken)
	assert.Empty(t, us[2].ResetToken)
}

func (s *HandlerTestSuite) TestFindByIds() {
	t := s.T()
	s.newUser(t, 1, "a@example.com", "secret123", "applicant", false)
	s.newUser(t, 2, "b@example.com", "secret123", "applicant", false)
	res, err := s.module.Svc.FindByIds(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "a", res[1].Name)
	assert.Equal(t, "b", res[2].Name)
	assert.Empty(t, res[1].Password)

	res, err = s.module.Svc.FindByIds(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func (s *HandlerTestSuite) post(t *testing.T, server *egin.Component, path string, body any) test.Result[web.Profile] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

// newUser 名字取邮箱 @ 前面的部分
func (s *HandlerTestSuite) newUser(t *testing.T, id int64, addr, password, role string, blocked bool) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now().UnixMilli()
	err = s.db.Create(&dao.User{
		Id:         id,
		Name:       addr[:len(addr)-len("@example.com")],
		Email:      addr,
		Password:   string(hash),
		Role:       role,
		Blocked:    blocked,
		Location:   "Pune",
		PictureURL: defaultPictureURL,
		Ctime:      now,
		Utime:      now,
	}).Error
	require.NoError(t, err)
}
