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

import "github.com/ecodeclub/careerlens/internal/search/internal/domain"

type SearchReq struct {
	Keywords string `json:"keywords"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type Job struct {
	Id             int64    `json:"id"`
	RecruiterId    int64    `json:"recruiterId"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	MinExperience  float64  `json:"minExperience"`
	Type           string   `json:"type"`
	Location       string   `json:"location"`
	IsRemote       bool     `json:"isRemote"`
	SalaryMin      int64    `json:"salaryMin"`
	SalaryMax      int64    `json:"salaryMax"`
	SalaryCurrency string   `json:"salaryCurrency"`
	Ctime          int64    `json:"ctime"`
}

type SearchResult struct {
	Total int64 `json:"total"`
	Jobs  []Job `json:"jobs"`
}

func newJob(j domain.Job) Job {
	return Job{
		Id:             j.Id,
		RecruiterId:    j.RecruiterId,
		Title:          j.Title,
		Description:    j.Description,
		Skills:         j.Skills,
		MinExperience:  j.MinExperience,
		Type:           j.Type,
		Location:       j.Location,
		IsRemote:       j.IsRemote,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		SalaryCurrency: j.SalaryCurrency,
		Ctime:          j.Ctime,
	}
}
