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

package web

import (
	"github.com/ecodeclub/careerlens/internal/pkg/middleware"
	"github.com/ecodeclub/careerlens/internal/user/internal/domain"
	"github.com/ecodeclub/careerlens/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/picture", ginx.BS[PictureReq](h.UpdatePicture))
	users.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.POST("/password/forgot", ginx.B[ForgotPasswordReq](h.ForgotPassword))
	users.POST("/password/reset", ginx.B[ResetPasswordReq](h.ResetPassword))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.userSvc.Register(ctx, domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Profile: domain.Profile{
			Phone:    req.Phone,
			Location: req.Location,
			Headline: req.Headline,
			About:    req.About,
		},
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Login 角色放进 jwt 里面，权限校验的中间件直接读取
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return errorResult(err)
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			middleware.RoleKey: u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	// 同时清理掉 token
	err := session.DefaultProvider().Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑资料
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.EditProfile(ctx, domain.User{
		Id:   sess.Claims().Uid,
		Name: req.Name,
		Profile: domain.Profile{
			Phone:    req.Phone,
			Location: req.Location,
			Headline: req.Headline,
			About:    req.About,
		},
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// UpdatePicture 图片由前端拿着 cos 的临时密钥直接上传，这里只记录地址
func (h *Handler) UpdatePicture(ctx *ginx.Context, req PictureReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdatePicture(ctx, sess.Claims().Uid, req.URL)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ForgotPassword(ctx *ginx.Context, req ForgotPasswordReq) (ginx.Result, error) {
	err := h.userSvc.ForgotPassword(ctx, req.Email)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ResetPassword(ctx *ginx.Context, req ResetPasswordReq) (ginx.Result, error) {
	err := h.userSvc.ResetPassword(ctx, req.Token, req.Password)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
