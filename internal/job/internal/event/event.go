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
	"strconv"

	"github.com/ecodeclub/careerlens/internal/job/internal/domain"
	"github.com/ecodeclub/careerlens/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const JobSyncEventName = "job_sync_events"

const (
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// JobSyncEvent 同步到搜索，删除的时候只有 Id
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

func NewUpsertEvent(job domain.Job) JobSyncEvent {
	return JobSyncEvent{
		Op: OpUpsert,
		Job: Job{
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
		},
	}
}

func NewDeleteEvent(id int64) JobSyncEvent {
	return JobSyncEvent{
		Op:  OpDelete,
		Job: Job{Id: id},
	}
}

type JobSyncEventProducer mqx.Producer[JobSyncEvent]

func NewJobSyncEventProducer(q mq.MQ) (JobSyncEventProducer, error) {
	// 同一个岗位的更新和删除要按顺序同步
	return mqx.NewGeneralProducer(q, JobSyncEventName, mqx.WithKey(func(evt JobSyncEvent) string {
		return strconv.FormatInt(evt.Job.Id, 10)
	}))
}
