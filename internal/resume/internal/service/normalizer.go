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
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/ecodeclub/careerlens/internal/resume/internal/domain"
)

// ErrInvalidAIResponse 大模型的回答不是一个 JSON 对象，和网络错误区分开
var ErrInvalidAIResponse = errors.New("AI 返回的不是合法的 JSON")

const durationSeparator = "–"

// NormalizeInsights 把大模型的回答转成 Insights
// 除了整体不是 JSON 对象以外，任何字段类型不对都只会被置为零值
func NormalizeInsights(raw string) (domain.Insights, error) {
	content := stripFences(raw)
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start >= 0 && end > start {
		content = content[start : end+1]
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err != nil || obj == nil {
		return domain.Insights{}, ErrInvalidAIResponse
	}
	return domain.Insights{
		Skills:          stringList(obj["skills"]),
		ExperienceYears: years(obj["experienceYears"]),
		Summary:         stringOf(obj["summary"]),
		WorkExperience:  workExperiences(obj["workExperience"]),
	}, nil
}

func stripFences(raw string) string {
	content := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(content), "```json") {
		content = content[len("```json"):]
	} else {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	res := make([]string, 0, len(arr))
	for _, item := range arr {
		str, ok := item.(string)
		if !ok {
			continue
		}
		str = strings.TrimSpace(str)
		if str != "" {
			res = append(res, str)
		}
	}
	return res
}

func years(v any) float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func stringOf(v any) string {
	str, _ := v.(string)
	return str
}

func workExperiences(v any) []domain.WorkExperience {
	arr, ok := v.([]any)
	if !ok {
		return []domain.WorkExperience{}
	}
	res := make([]domain.WorkExperience, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		start, end := splitDuration(stringOf(obj["duration"]))
		res = append(res, domain.WorkExperience{
			Company:     stringOf(obj["company"]),
			Role:        stringOf(obj["designation"]),
			StartDate:   start,
			EndDate:     end,
			Description: stringOf(obj["summary"]),
		})
	}
	return res
}

// splitDuration "Jan 2020 – Mar 2022" 拆成开始和结束，没有结束的就是至今
func splitDuration(duration string) (string, string) {
	if duration == "" {
		return "", ""
	}
	segs := strings.Split(duration, durationSeparator)
	start := strings.TrimSpace(segs[0])
	end := ""
	if len(segs) > 1 {
		end = strings.TrimSpace(segs[1])
	}
	if end == "" {
		end = "Present"
	}
	return start, end
}
