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
	"github.com/ecodeclub/careerlens/internal/job/internal/domain"
)

type Job struct {
	Id             int64    `json:"id,omitempty"`
	RecruiterId    int64    `json:"recruiterId,omitempty"`
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
	Status         string   `json:"status,omitempty"`
	Ctime          int64    `json:"ctime,omitempty"`
	Utime          int64    `json:"utime,omitempty"`
}

func newJob(job domain.Job) Job {
	return Job{
		Id:             job.Id,
		RecruiterId:    job.RecruiterId,
		Title:          job.Title,
		Description:    job.Description,
		Skills:         job.Skills,
		MinExperience:  job.MinExperience,
		Type:           job.Type.String(),
		Location:       job.Location,
		IsRemote:       job.IsRemote,
		SalaryMin:      job.Salary.Min,
		SalaryMax:      job.Salary.Max,
		SalaryCurrency: job.Salary.Currency,
		Status:         job.Status.String(),
		Ctime:          job.Ctime,
		Utime:          job.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		Id:            j.Id,
		Title:         j.Title,
		Description:   j.Description,
		Skills:        j.Skills,
		MinExperience: j.MinExperience,
		Type:          domain.JobType(j.Type),
		Location:      j.Location,
		IsRemote:      j.IsRemote,
		Salary: domain.Salary{
			Min:      j.SalaryMin,
			Max:      j.SalaryMax,
			Currency: j.SalaryCurrency,
		},
	}
}

type SaveReq struct {
	Job Job `json:"job"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

const maxLimit = 100

// normalize limit 默认 10，最多 100
func (p Page) normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

type JobList struct {
	Total int64 `json:"total"`
	Jobs  []Job `json:"jobs"`
}
