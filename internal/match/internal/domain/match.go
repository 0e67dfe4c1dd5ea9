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

const BizMatchFeedback = "match_feedback"

const (
	// SkillWeight 技能占 70%
	SkillWeight = 0.7
	// ExperienceWeight 经验占 30%
	ExperienceWeight = 0.3
)

// JobRequirements 计算匹配度的时候职位的快照
type JobRequirements struct {
	Skills             []string `json:"skills"`
	MinExperienceYears float64  `json:"minExperienceYears"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// CandidateProfile 从简历里面提取出来的候选人信息
type CandidateProfile struct {
	Skills          []string         `json:"skills"`
	ExperienceYears float64          `json:"experienceYears"`
	Summary         string           `json:"summary"`
	WorkExperience  []WorkExperience `json:"workExperience"`
}

type MatchResult struct {
	// 0-100
	MatchScore    int      `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	// nil 表示没有经验差距
	ExperienceGap *float64 `json:"experienceGap"`
	Summary       string   `json:"summary"`
	AIFeedback    string   `json:"aiFeedback"`
}

func (r MatchResult) HasExperienceGap() bool {
	return r.ExperienceGap != nil
}

// Gap 没有差距的时候返回 0
func (r MatchResult) Gap() float64 {
	if r.ExperienceGap == nil {
		return 0
	}
	return *r.ExperienceGap
}
