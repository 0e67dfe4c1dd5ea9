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

import (
	"github.com/ecodeclub/careerlens/internal/resume/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type Resume struct {
	Id              int64            `json:"id"`
	FileURL         string           `json:"fileURL"`
	FileName        string           `json:"fileName"`
	ContentType     string           `json:"contentType"`
	ParseStatus     string           `json:"parseStatus"`
	ParsedAt        int64            `json:"parsedAt,omitempty"`
	Skills          []string         `json:"skills"`
	ExperienceYears float64          `json:"experienceYears"`
	Summary         string           `json:"summary"`
	WorkExperience  []WorkExperience `json:"workExperience"`
	AnalyzedAt      int64            `json:"analyzedAt,omitempty"`
	Ctime           int64            `json:"ctime,omitempty"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

func newResume(r domain.Resume) Resume {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return Resume{
		Id:              r.Id,
		FileURL:         r.FileURL,
		FileName:        r.FileName,
		ContentType:     r.ContentType,
		ParseStatus:     r.ParseStatus.String(),
		ParsedAt:        r.ParsedAt,
		Skills:          skills,
		ExperienceYears: r.ExperienceYears,
		Summary:         r.Summary,
		WorkExperience: slice.Map(r.WorkExperience, func(idx int, src domain.WorkExperience) WorkExperience {
			return WorkExperience(src)
		}),
		AnalyzedAt: r.AnalyzedAt,
		Ctime:      r.Ctime,
	}
}

type IdReq struct {
	Id int64 `json:"id"`
}
