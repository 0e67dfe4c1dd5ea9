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

package event

import (
	"github.com/ecodeclub/careerlens/internal/search/internal/domain"
)

const JobSyncTopic = "job_sync_events"

const (
	OpUpsert = "upsert"
	OpDelete = "delete"
)

type JobSyncEvent struct {
	Op  string `json:"op"`
	Job Job    `json:"job"`
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
	Status         string   `json:"status"`
	Ctime          int64    `json:"ctime"`
	Utime          int64    `json:"utime"`
}

func (j Job) toDomain() domain.Job {
	return domain.Job(j)
}
