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

import "github.com/ecodeclub/careerlens/internal/match"

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusSelected    Status = "selected"
	StatusRejected    Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// Updatable recruiter 只能把投递改成这几个状态
func (s Status) Updatable() bool {
	switch s {
	case StatusShortlisted, StatusSelected, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	Id          int64
	SN          string
	JobId       int64
	ApplicantId int64
	ResumeId    int64
	Status      Status
	// 投递时候的匹配结果快照，之后不会再变
	Match match.MatchResult
	Ctime int64
	Utime int64

	// 下面两个只在列表里面填充
	Job       Job
	Applicant Applicant
}

type Job struct {
	Id       int64
	Title    string
	Location string
	Type     string
}

type Applicant struct {
	Id         int64
	Name       string
	Email      string
	Headline   string
	PictureURL string
}
