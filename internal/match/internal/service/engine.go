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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ecodeclub/careerlens/internal/match/internal/domain"
)

// ComputeMatch 计算候选人和职位的匹配度。
// 不会返回错误，非法输入一律按照零值处理。
func ComputeMatch(job domain.JobRequirements, candidate domain.CandidateProfile) domain.MatchResult {
	required := normalizeSkills(job.Skills)
	owned := make(map[string]struct{}, len(candidate.Skills))
	for _, s := range normalizeSkills(candidate.Skills) {
		owned[s] = struct{}{}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := owned[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	var skillPercent float64
	if len(required) > 0 {
		skillPercent = float64(len(matched)) / float64(len(required)) * 100
	}

	minExp := sanitizeYears(job.MinExperienceYears)
	exp := sanitizeYears(candidate.ExperienceYears)
	expScore := 100.0
	var gap *float64
	if minExp > 0 && exp < minExp {
		expScore = exp / minExp * 100
		g := minExp - exp
		gap = &g
	}

	res := domain.MatchResult{
		MatchScore:    score(skillPercent*domain.SkillWeight + expScore*domain.ExperienceWeight),
		MatchedSkills: matched,
		MissingSkills: missing,
		ExperienceGap: gap,
	}
	res.Summary = summarize(len(matched), len(required), missing, gap)
	return res
}

// normalizeSkills 小写、去空白、去重，保持原有顺序
func normalizeSkills(skills []string) []string {
	res := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, key)
	}
	return res
}

func sanitizeYears(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func score(raw float64) int {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	res := int(math.Round(raw))
	switch {
	case res < 0:
		return 0
	case res > 100:
		return 100
	default:
		return res
	}
}

func summarize(matched, required int, missing []string, gap *float64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d/%d required skills.", matched, required))
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing skills: %s.", strings.Join(missing, ", ")))
	} else {
		sb.WriteString("\nAll required skills matched.")
	}
	if gap != nil {
		sb.WriteString(fmt.Sprintf("\nNeeds %s more years of experience.", FormatYears(*gap)))
	} else {
		sb.WriteString("\nExperience requirement met.")
	}
	return sb.String()
}

// FormatYears 1 -> "1"，1.5 -> "1.5"，最多保留两位小数
func FormatYears(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
