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

import "github.com/ecodeclub/careerlens/internal/ai/internal/domain"

type Config struct {
	Id             int64   `json:"id,omitempty"`
	Biz            string  `json:"biz,omitempty"`
	MaxInput       int     `json:"maxInput,omitempty"`
	Model          string  `json:"model,omitempty"`
	Price          int64   `json:"price,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	TopP           float64 `json:"topP,omitempty"`
	SystemPrompt   string  `json:"systemPrompt,omitempty"`
	PromptTemplate string  `json:"promptTemplate,omitempty"`
	Utime          int64   `json:"utime,omitempty"`
}

// newConfig 签名和 slice.Map 对齐
func newConfig(_ int, cfg domain.BizConfig) Config {
	return Config{
		Id:             cfg.Id,
		Biz:            cfg.Biz,
		MaxInput:       cfg.MaxInput,
		Model:          cfg.Model,
		Price:          cfg.Price,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		SystemPrompt:   cfg.SystemPrompt,
		PromptTemplate: cfg.PromptTemplate,
		Utime:          cfg.Utime,
	}
}

func (c Config) toDomain() domain.BizConfig {
	return domain.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		MaxInput:       c.MaxInput,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		SystemPrompt:   c.SystemPrompt,
		PromptTemplate: c.PromptTemplate,
	}
}

type ConfigRequest struct {
	Config Config `json:"config,omitempty"`
}

type ConfigInfoReq struct {
	Id int64 `json:"id,omitempty"`
}
