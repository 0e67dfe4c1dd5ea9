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
	"github.com/ecodeclub/careerlens/internal/search/internal/domain"
	"github.com/ecodeclub/careerlens/internal/search/internal/errs"
	"github.com/ecodeclub/careerlens/internal/search/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.SearchService
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/search/jobs", ginx.B[SearchReq](h.SearchJobs))
}

func (h *Handler) SearchJobs(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	if req.Offset < 0 {
		req.Offset = 0
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	res, err := h.svc.SearchJobs(ctx, req.Keywords, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SearchResult{
			Total: res.Total,
			Jobs: slice.Map(res.Jobs, func(idx int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}
