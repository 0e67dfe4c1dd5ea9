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
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/careerlens/internal/ai"
	"github.com/ecodeclub/careerlens/internal/match/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// FeedbackComposer 把匹配结果转成一段自然语言。
// 大模型不可用的时候退化成本地模板，永远不会返回错误。
type FeedbackComposer struct {
	aiSvc  ai.LLMService
	logger *elog.Component
}

// NewFeedbackComposer aiSvc 可以为 nil，这时候只用模板
func NewFeedbackComposer(aiSvc ai.LLMService) *FeedbackComposer {
	return &FeedbackComposer{
		aiSvc:  aiSvc,
		logger: elog.DefaultLogger,
	}
}

func (c *FeedbackComposer) Compose(ctx context.Context, uid int64, matched, missing []string, gap *float64) string {
	if c.aiSvc == nil {
		return TemplateFeedback(matched, missing, gap)
	}
	resp, err := c.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz: domain.BizMatchFeedback,
		Uid: uid,
		Tid: shortuuid.New(),
		Input: []string{
			strings.Join(matched, ", "),
			strings.Join(missing, ", "),
			gapText(gap),
		},
	})
	if err != nil {
		c.logger.Warn("生成匹配反馈失败，使用本地模板", elog.FieldErr(err), elog.Int64("uid", uid))
		return TemplateFeedback(matched, missing, gap)
	}
	answer := strings.TrimSpace(resp.Answer)
	if answer == "" {
		return TemplateFeedback(matched, missing, gap)
	}
	return answer
}

// TemplateFeedback 本地模板，结果只取决于入参
func TemplateFeedback(matched, missing []string, gap *float64) string {
	missingText := "none"
	if len(missing) > 0 {
		missingText = strings.Join(missing, ", ")
	}
	expText := "Experience requirement is met."
	if gap != nil {
		expText = fmt.Sprintf("You need %s more years of experience.", FormatYears(*gap))
	}
	return fmt.Sprintf("You match %d required skills.\nMissing skills: %s.\n%s",
		len(matched), missingText, expText)
}

func gapText(gap *float64) string {
	if gap == nil {
		return "none"
	}
	return FormatYears(*gap)
}
