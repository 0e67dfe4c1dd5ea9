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

package service

import (
	"testing"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := func(fn func(cfg *domain.BizConfig)) domain.BizConfig {
		cfg := domain.BizConfig{Biz: "resume_insights", Model: "gpt-4o-mini", Temperature: 0.2, TopP: 1, PromptTemplate: "%s"}
		fn(&cfg)
		return cfg
	}
	testCases := []struct {
		name    string
		cfg     domain.BizConfig
		wantErr error
	}{
		{name: "合法", cfg: valid(func(cfg *domain.BizConfig) {})},
		{name: "没有模板", cfg: valid(func(cfg *domain.BizConfig) { cfg.PromptTemplate = "" })},
		{name: "缺少 model", cfg: valid(func(cfg *domain.BizConfig) { cfg.Model = "" }), wantErr: ErrInvalidConfig},
		{name: "价格为负数", cfg: valid(func(cfg *domain.BizConfig) { cfg.Price = -1 }), wantErr: ErrInvalidConfig},
		{name: "temperature 过大", cfg: valid(func(cfg *domain.BizConfig) { cfg.Temperature = 2.5 }), wantErr: ErrInvalidConfig},
		{name: "topP 过大", cfg: valid(func(cfg *domain.BizConfig) { cfg.TopP = 1.2 }), wantErr: ErrInvalidConfig},
		{name: "模板缺少占位符", cfg: valid(func(cfg *domain.BizConfig) { cfg.PromptTemplate = "hello" }), wantErr: ErrInvalidConfig},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validate(tc.cfg), tc.wantErr)
		})
	}
}
