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

package resume

import (
	"github.com/ecodeclub/careerlens/internal/resume/internal/domain"
	"github.com/ecodeclub/careerlens/internal/resume/internal/event/consumer"
	"github.com/ecodeclub/careerlens/internal/resume/internal/service"
	"github.com/ecodeclub/careerlens/internal/resume/internal/web"
)

type (
	Service        = service.Service
	Handler        = web.Handler
	Resume         = domain.Resume
	Insights       = domain.Insights
	WorkExperience = domain.WorkExperience
	UploadFile     = domain.UploadFile
)

var (
	ErrResumeNotFound    = service.ErrResumeNotFound
	ErrPermissionDenied  = service.ErrPermissionDenied
	ErrInvalidAIResponse = service.ErrInvalidAIResponse
)

// NormalizeInsights 把大模型的回答整理成结构化的简历信息，离线工具也会用到
var NormalizeInsights = service.NormalizeInsights

type Module struct {
	Svc Service
	Hdl *Handler
	C   *consumer.ResumeParsedConsumer
}
