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

// 这两个 biz 由使用方定义，这里只是为了初始化默认配置
const (
	BizResumeInsights = "resume_insights"
	BizMatchFeedback  = "match_feedback"
)

const resumeInsightsPrompt = `You are an AI that extracts structured information from resumes.

From the resume text below, extract:
1. A list of technical skills
2. Total years of professional experience (number only)
3. A short professional summary (2-3 lines)
4. Work experience entries with company, designation, duration ("<start> – <end>") and a one line summary

Return ONLY valid JSON in this exact format:
{
  "skills": [],
  "experienceYears": 0,
  "summary": "",
  "workExperience": [{"company": "", "designation": "", "duration": "", "summary": ""}]
}

Resume Text:
"""
%s
"""

IMPORTANT RULES:
- Output ONLY raw JSON
- Do NOT wrap the response in a code fence
- Do NOT include any explanation or extra text`

const matchFeedbackPrompt = `A candidate was scored against a job posting.
Matched skills: %s
Missing skills: %s
Experience gap in years: %s

Write a short, encouraging paragraph (at most 3 sentences) addressed to the candidate
explaining how well they fit and what they could improve. Plain text only.`

// DefaultConfigs 初始化表的时候写入，已经存在的不会覆盖
func DefaultConfigs() []BizConfig {
	return []BizConfig{
		{
			Biz:            BizResumeInsights,
			Model:          "gpt-4o-mini",
			Temperature:    0.2,
			SystemPrompt:   "You extract structured resume data.",
			MaxInput:       20000,
			PromptTemplate: resumeInsightsPrompt,
		},
		{
			Biz:            BizMatchFeedback,
			Model:          "gpt-4o-mini",
			Temperature:    0.7,
			SystemPrompt:   "You are a friendly career coach.",
			MaxInput:       2000,
			PromptTemplate: matchFeedbackPrompt,
		},
	}
}
