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
	"testing"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/yankeguo/zhipu"
)

func TestMessages(t *testing.T) {
	req := domain.LLMRequest{
		Input:  []string{"go"},
		Config: domain.BizConfig{PromptTemplate: "skills: %s"},
	}
	assert.Equal(t, []zhipu.ChatCompletionMessage{
		{Role: zhipu.RoleUser, Content: "skills: go"},
	}, messages(req))

	req.Config.SystemPrompt = "You are a friendly career coach."
	msgs := messages(req)
	assert.Len(t, msgs, 2)
	assert.Equal(t, zhipu.RoleSystem, msgs[0].Role)
}
