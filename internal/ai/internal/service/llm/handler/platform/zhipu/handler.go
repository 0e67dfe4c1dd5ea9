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

package zhipu

import (
	"context"
	"fmt"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

// Handler 智谱开放平台，在链路的最末端
type Handler struct {
	client *zhipu.Client
}

func NewHandler(baseURL, apikey string) (*Handler, error) {
	opts := []zhipu.ClientOption{zhipu.WithAPIKey(apikey)}
	if baseURL != "" {
		opts = append(opts, zhipu.WithBaseURL(baseURL))
	}
	client, err := zhipu.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("初始化智谱客户端失败: %w", err)
	}
	return &Handler{client: client}, nil
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	svc := h.client.ChatCompletion(req.Config.Model)
	for _, msg := range messages(req) {
		svc = svc.AddMessage(msg)
	}
	if req.Config.Temperature > 0 {
		svc = svc.SetTemperature(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		svc = svc.SetTopP(req.Config.TopP)
	}
	completion, err := svc.Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
		Amount: req.Config.Amount(completion.Usage.TotalTokens),
	}
	// 没有回答的时候交给上层兜底
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func messages(req domain.LLMRequest) []zhipu.ChatCompletionMessage {
	res := make([]zhipu.ChatCompletionMessage, 0, 2)
	if req.Config.SystemPrompt != "" {
		res = append(res, zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: req.Config.SystemPrompt,
		})
	}
	return append(res, zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt(),
	})
}
