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

package ai

import (
	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/careerlens/internal/ai/internal/web"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service
type AdminHandler = web.AdminHandler

// Platform 大模型平台，测试中可以替换
type Platform = handler.Handler
type PlatformFunc = handler.HandleFunc

const (
	BizResumeInsights = domain.BizResumeInsights
	BizMatchFeedback  = domain.BizMatchFeedback
)

var ErrInputTooLong = config.ErrInputTooLong
