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
	"github.com/ecodeclub/careerlens/internal/job/internal/domain"
	"github.com/ecodeclub/careerlens/internal/job/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/block", ginx.B[IdReq](h.Block))
	g.POST("/unblock", ginx.B[IdReq](h.Unblock))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	req = req.normalize()
	jobs, total, err := h.svc.AdminList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobList{
			Total: total,
			Jobs: slice.Map(jobs, func(idx int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Block(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Block(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Unblock(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Unblock(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
