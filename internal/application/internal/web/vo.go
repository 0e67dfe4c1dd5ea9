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
	"github.com/ecodeclub/careerlens/internal/application/internal/domain"
	"github.com/ecodeclub/careerlens/internal/match"
)

type ApplyReq struct {
	JobId    int64 `json:"jobId"`
	ResumeId int64 `json:"resumeId"`
}

type JobIdReq struct {
	JobId int64 `json:"jobId"`
}

type UpdateStatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type Application struct {
	Id        int64       `json:"id"`
	SN        string      `json:"sn"`
	JobId     int64       `json:"jobId"`
	ResumeId  int64       `json:"resumeId"`
	Status    string      `json:"status"`
	Analysis  MatchResult `json:"analysis"`
	Job       Job         `json:"job"`
	Applicant *Applicant  `json:"applicant,omitempty"`
	Ctime     int64       `json:"ctime"`
	Utime     int64       `json:"utime"`
}

type Job struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

type Applicant struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Headline   string `json:"headline"`
	PictureURL string `json:"pictureUrl"`
}

type MatchResult struct {
	MatchScore    int      `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	ExperienceGap *float64 `json:"experienceGap"`
	Summary       string   `json:"summary"`
	AIFeedback    string   `json:"aiFeedback"`
}

type ApplicationList struct {
	Applications []Application `json:"applications"`
}

type ApplicantList struct {
	Job        Job           `json:"job"`
	Applicants []Application `json:"applicants"`
}

func newMatchResult(r match.MatchResult) MatchResult {
	return MatchResult{
		MatchScore:    r.MatchScore,
		MatchedSkills: r.MatchedSkills,
		MissingSkills: r.MissingSkills,
		ExperienceGap: r.ExperienceGap,
		Summary:       r.Summary,
		AIFeedback:    r.AIFeedback,
	}
}

func newJob(j domain.Job) Job {
	return Job{
		Id:       j.Id,
		Title:    j.Title,
		Location: j.Location,
		Type:     j.Type,
	}
}

func newApplication(app domain.Application) Application {
	return Application{
		Id:       app.Id,
		SN:       app.SN,
		JobId:    app.JobId,
		ResumeId: app.ResumeId,
		Status:   app.Status.String(),
		Analysis: newMatchResult(app.Match),
		Job:      newJob(app.Job),
		Ctime:    app.Ctime,
		Utime:    app.Utime,
	}
}
