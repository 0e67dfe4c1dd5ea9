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
	"errors"

	"github.com/ecodeclub/careerlens/internal/ai/internal/errs"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 只挂在 admin 服务上
type AdminHandler struct {
	svc service.ConfigService
}

func NewAdminHandler(svc service.ConfigService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ai/config")
	g.POST("/save", ginx.B[ConfigRequest](h.Save))
	g.GET("/list", ginx.W(h.List))
	g.POST("/detail", ginx.B[ConfigInfoReq](h.Detail))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req ConfigRequest) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Config.toDomain())
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	configs, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(configs, newConfig)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req ConfigInfoReq) (ginx.Result, error) {
	cfg, err := h.svc.GetById(ctx, req.Id)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: newConfig(0, cfg)}, nil
}

func (h *AdminHandler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidConfig):
		return ginx.Result{Code: errs.InvalidConfig.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrConfigNotFound):
		return ginx.Result{Code: errs.ConfigNotFound.Code, Msg: errs.ConfigNotFound.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
