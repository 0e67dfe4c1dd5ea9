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
	"fmt"
	"math"

	"github.com/ecodeclub/ekit/slice"
)

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 用户的输入，按照顺序填充 PromptTemplate 里面的 %s
	Input []string
	// 业务相关的配置，由 config 那一环填充
	Config BizConfig
}

// Prompt 将 Input 和 PromptTemplate 结合之后生成的 prompt
func (req LLMRequest) Prompt() string {
	if req.Config.PromptTemplate == "" {
		return ""
	}
	args := slice.Map(req.Input, func(idx int, src string) any {
		return src
	})
	return fmt.Sprintf(req.Config.PromptTemplate, args...)
}

// InputLen 所有输入的字符数
func (req LLMRequest) InputLen() int {
	total := 0
	for _, in := range req.Input {
		total += len([]rune(in))
	}
	return total
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额，分
	Amount int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Id  int64
	Biz string
	// 使用的模型
	Model string
	// 多少分钱/1000 token
	Price int64

	Temperature float64
	TopP        float64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入，0 表示不限制
	MaxInput int
	// 这里一般使用 %s
	PromptTemplate string
	Utime          int64
}

// Amount 现在的报价都是 N/1k token，向上取整
func (c BizConfig) Amount(tokens int64) int64 {
	return int64(math.Ceil(float64(tokens*c.Price) / float64(1000)))
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Uid            int64
	Biz            string
	Tokens         int64
	Amount         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
