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
	"github.com/ecodeclub/careerlens/internal/application/internal/domain"
	"github.com/ecodeclub/careerlens/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const ApplicationStatusEventName = "application_status_events"

// ApplicationStatusEvent recruiter 修改投递状态之后发出，用于通知投递者
type ApplicationStatusEvent struct {
	ApplicationId int64  `json:"applicationId"`
	SN            string `json:"sn"`
	JobId         int64  `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	ApplicantId   int64  `json:"applicantId"`
	Status        string `json:"status"`
}

func NewApplicationStatusEvent(app domain.Application, jobTitle string) ApplicationStatusEvent {
	return ApplicationStatusEvent{
		ApplicationId: app.Id,
		SN:            app.SN,
		JobId:         app.JobId,
		JobTitle:      jobTitle,
		ApplicantId:   app.ApplicantId,
		Status:        app.Status.String(),
	}
}

type ApplicationStatusEventProducer mqx.Producer[ApplicationStatusEvent]

func NewApplicationStatusEventProducer(q mq.MQ) (ApplicationStatusEventProducer, error) {
	return mqx.NewGeneralProducer(q, ApplicationStatusEventName, mqx.WithKey(func(evt ApplicationStatusEvent) string {
		return evt.SN
	}))
}
