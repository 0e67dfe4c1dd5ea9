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
	"io"

	"github.com/ecodeclub/careerlens/internal/pkg/middleware"
	"github.com/ecodeclub/careerlens/internal/resume/internal/domain"
	"github.com/ecodeclub/careerlens/internal/resume/internal/errs"
	"github.com/ecodeclub/careerlens/internal/resume/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 5MB
const maxFileSize = 5 << 20

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/resume")
	g.Use(middleware.NewCheckRoleMiddlewareBuilder("applicant").Build())
	g.POST("/upload", ginx.S(h.Upload))
	g.GET("/mine", ginx.S(h.Mine))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/analyze", ginx.S(h.Analyze))
}

// Upload multipart 表单，文件字段为 file
func (h *Handler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	header, err := ctx.FormFile("file")
	if err != nil || header.Size <= 0 || header.Size > maxFileSize {
		return resultOf(errs.InvalidFile), nil
	}
	f, err := header.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxFileSize))
	if err != nil {
		return systemErrorResult, err
	}
	resume, err := h.svc.Upload(ctx, sess.Claims().Uid, domain.UploadFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	switch {
	case errors.Is(err, service.ErrParsingFailed):
		res := resultOf(errs.ParsingFailed)
		res.Data = newResume(resume)
		return res, nil
	case errors.Is(err, service.ErrUnsupportedFileType):
		return resultOf(errs.UnsupportedFileType), nil
	case errors.Is(err, service.ErrResumeExists):
		return resultOf(errs.ResumeExists), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(resume),
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	resume, err := h.svc.Mine(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return resultOf(errs.ResumeNotFound), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(resume),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return resultOf(errs.ResumeNotFound), nil
	case errors.Is(err, service.ErrPermissionDenied):
		return resultOf(errs.PermissionDenied), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Analyze 同步触发分析，已经分析过的直接返回
func (h *Handler) Analyze(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	resume, err := h.svc.Analyze(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return resultOf(errs.ResumeNotFound), nil
	case errors.Is(err, service.ErrEmptyResumeText):
		return resultOf(errs.EmptyResumeText), nil
	case errors.Is(err, service.ErrAnalysisFailed):
		h.logger.Warn("简历分析失败", elog.FieldErr(err), elog.Int64("uid", sess.Claims().Uid))
		return resultOf(errs.AnalysisFailed), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(resume),
	}, nil
}
