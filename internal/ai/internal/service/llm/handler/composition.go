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

package handler

import (
	"context"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
)

// CompositionHandler 把 builders 一层层包在 root 外面
type CompositionHandler struct {
	root Handler
}

// NewCompositionHandler 第一个 Builder 在最外层，也就是最先执行，nil 会被跳过
func NewCompositionHandler(root Handler, builders ...Builder) *CompositionHandler {
	for i := len(builders) - 1; i >= 0; i-- {
		if builders[i] == nil {
			continue
		}
		root = builders[i].Next(root)
	}
	return &CompositionHandler{root: root}
}

func (c *CompositionHandler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return c.root.Handle(ctx, req)
}
