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

package gemini

import (
	"context"
	"strings"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"google.golang.org/genai"
)

type Handler struct {
	client *genai.Client
}

func NewHandler(ctx context.Context, apikey string) (*Handler, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apikey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Handler{client: client}, nil
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	result, err := h.client.Models.GenerateContent(ctx, req.Config.Model,
		genai.Text(req.Prompt()), h.buildConfig(req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	var resp domain.LLMResponse
	if result.UsageMetadata != nil {
		resp.Tokens = int64(result.UsageMetadata.TotalTokenCount)
		resp.Amount = req.Config.Amount(resp.Tokens)
	}
	resp.Answer = answerOf(result)
	return resp, nil
}

func (h *Handler) buildConfig(req domain.LLMRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.Config.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.Config.SystemPrompt}},
		}
	}
	if req.Config.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Config.Temperature))
	}
	if req.Config.TopP > 0 {
		cfg.TopP = genai.Ptr(float32(req.Config.TopP))
	}
	return cfg
}

// answerOf 只取第一个候选
func answerOf(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) == 0 || result.Candidates[0] == nil ||
		result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
