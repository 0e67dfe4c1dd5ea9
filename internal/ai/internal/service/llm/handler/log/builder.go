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

package log

import (
	"context"
	"time"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

var _ handler.Builder = (*HandlerBuilder)(nil)

// HandlerBuilder 简历原文可能很长，所以只记录长度不记录内容
type HandlerBuilder struct {
	logger *elog.Component
}

func NewHandler() *HandlerBuilder {
	return &HandlerBuilder{
		logger: elog.DefaultLogger.With(elog.FieldComponent("ai.llm")),
	}
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		logger := h.logger.With(
			elog.String("tid", req.Tid),
			elog.Int64("uid", req.Uid),
			elog.String("biz", req.Biz))
		start := time.Now()
		logger.Debug("调用大模型", elog.Int("inputLen", req.InputLen()))
		resp, err := next.Handle(ctx, req)
		cost := time.Since(start)
		if err != nil {
			logger.Error("调用大模型失败", elog.FieldErr(err), elog.FieldCost(cost))
			return resp, err
		}
		logger.Debug("调用大模型成功",
			elog.Int64("tokens", resp.Tokens),
			elog.Int("answerLen", len([]rune(resp.Answer))),
			elog.FieldCost(cost))
		return resp, nil
	})
}
