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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMRequest_Prompt(t *testing.T) {
	testCases := []struct {
		name string
		req  LLMRequest
		want string
	}{
		{
			name: "按顺序填充",
			req: LLMRequest{
				Input:  []string{"a", "b"},
				Config: BizConfig{PromptTemplate: "first %s, second %s"},
			},
			want: "first a, second b",
		},
		{
			name: "没有模板",
			req:  LLMRequest{Input: []string{"a"}},
			want: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.Prompt())
		})
	}
}

func TestBizConfig_Amount(t *testing.T) {
	cfg := BizConfig{Price: 3}
	assert.Equal(t, int64(0), cfg.Amount(0))
	// 向上取整
	assert.Equal(t, int64(1), cfg.Amount(1))
	assert.Equal(t, int64(3), cfg.Amount(1000))
	assert.Equal(t, int64(4), cfg.Amount(1001))
}

func TestLLMRequest_InputLen(t *testing.T) {
	req := LLMRequest{Input: []string{"你好", "ab"}}
	assert.Equal(t, 4, req.InputLen())
}
