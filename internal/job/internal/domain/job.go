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

import (
	"github.com/ecodeclub/careerlens/internal/match"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship:
		return true
	}
	return false
}

func (t JobType) String() string {
	return string(t)
}

type Status string

const (
	StatusPublished Status = "published"
	StatusBlocked   Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

const DefaultCurrency = "INR"

type Job struct {
	Id          int64
	RecruiterId int64
	Title       string
	Description string
	Skills      []string
	// 最低工作年限
	MinExperience float64
	Type          JobType
	Location      string
	IsRemote      bool
	Salary        Salary
	Status        Status
	Ctime         int64
	Utime         int64
}

type Salary struct {
	Min      int64
	Max      int64
	Currency string
}

func (j Job) Blocked() bool {
	return j.Status == StatusBlocked
}

// Requirements 计算匹配度用的职位要求
func (j Job) Requirements() match.JobRequirements {
	return match.JobRequirements{
		Skills:             j.Skills,
		MinExperienceYears: j.MinExperience,
	}
}
