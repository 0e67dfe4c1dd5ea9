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
	"github.com/ecodeclub/careerlens/internal/pkg/middleware"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs/recruiter")
	g.Use(middleware.NewCheckRoleMiddlewareBuilder("recruiter").Build())
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/list", ginx.BS[Page](h.MyJobs))
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	req = req.normalize()
	jobs, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toList(jobs, total),
	}, nil
}

// Detail 被屏蔽的职位对外当作不存在
func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	job, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	if job.Blocked() {
		return errorResult(service.ErrJobNotFound)
	}
	return ginx.Result{
		Data: newJob(job),
	}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	job := req.Job.toDomain()
	job.RecruiterId = sess.Claims().Uid
	id, err := h.svc.Save(ctx, job)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) MyJobs(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	req = req.normalize()
	jobs, total, err := h.svc.MyJobs(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toList(jobs, total),
	}, nil
}

func (h *Handler) toList(jobs []domain.Job, total int64) JobList {
	return JobList{
		Total: total,
		Jobs: slice.Map(jobs, func(idx int, src domain.Job) Job {
			return newJob(src)
		}),
	}
}
