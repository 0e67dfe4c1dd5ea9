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
	"github.com/ecodeclub/careerlens/internal/application/internal/domain"
	"github.com/ecodeclub/careerlens/internal/application/internal/service"
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

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.Use(middleware.NewCheckRoleMiddlewareBuilder("applicant").Build())
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/preview", ginx.BS[JobIdReq](h.Preview))
	g.GET("/mine", ginx.S(h.MyApplications))

	rg := server.Group("/applications/recruiter")
	rg.Use(middleware.NewCheckRoleMiddlewareBuilder("recruiter").Build())
	rg.POST("/applicants", ginx.BS[JobIdReq](h.Applicants))
	rg.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Apply(ctx, sess.Claims().Uid, req.JobId, req.ResumeId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) Preview(ctx *ginx.Context, req JobIdReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Preview(ctx, sess.Claims().Uid, req.JobId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newMatchResult(res),
	}, nil
}

func (h *Handler) MyApplications(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.MyApplications(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ApplicationList{
			Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

func (h *Handler) Applicants(ctx *ginx.Context, req JobIdReq, sess session.Session) (ginx.Result, error) {
	j, apps, err := h.svc.Applicants(ctx, sess.Claims().Uid, req.JobId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: ApplicantList{
			Job: newJob(j),
			Applicants: slice.Map(apps, func(idx int, src domain.Application) Application {
				res := newApplication(src)
				res.Applicant = &Applicant{
					Id:         src.Applicant.Id,
					Name:       src.Applicant.Name,
					Email:      src.Applicant.Email,
					Headline:   src.Applicant.Headline,
					PictureURL: src.Applicant.PictureURL,
				}
				return res
			}),
		},
	}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, sess.Claims().Uid, req.Id, domain.Status(req.Status))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
