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

package record

import (
	"context"
	"time"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// maxRecordedInput 每个输入最多保存这么多字符，简历原文太长了
const maxRecordedInput = 2000

var _ handler.Builder = (*HandlerBuilder)(nil)

// HandlerBuilder 每次调用都留一条记录，失败的也要
type HandlerBuilder struct {
	repo   repository.LLMLogRepo
	logger *elog.Component
}

func NewHandler(repo repository.LLMLogRepo) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		record := domain.LLMRecord{
			Tid:            req.Tid,
			Uid:            req.Uid,
			Biz:            req.Biz,
			Input:          slice.Map(req.Input, func(idx int, src string) string { return truncate(src, maxRecordedInput) }),
			Status:         domain.RecordStatusFailed,
			PromptTemplate: req.Config.PromptTemplate,
		}
		resp, err := next.Handle(ctx, req)
		if err == nil {
			record.Status = domain.RecordStatusSuccess
			record.Tokens = resp.Tokens
			record.Amount = resp.Amount
			record.Answer = resp.Answer
		}
		h.save(ctx, record)
		return resp, err
	})
}

// save 调用方取消了也要把记录写进去
func (h *HandlerBuilder) save(ctx context.Context, record domain.LLMRecord) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second*3)
	defer cancel()
	if _, err := h.repo.SaveLog(ctx, record); err != nil {
		h.logger.Error("保存大模型调用记录失败", elog.String("tid", record.Tid), elog.FieldErr(err))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
