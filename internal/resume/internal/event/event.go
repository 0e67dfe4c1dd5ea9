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
	"github.com/ecodeclub/careerlens/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const ResumeParsedEventName = "resume_parsed_events"

// ResumeParsedEvent 文本提取成功之后发出，触发后台分析
type ResumeParsedEvent struct {
	Uid      int64 `json:"uid"`
	ResumeId int64 `json:"resumeId"`
}

type ResumeParsedEventProducer mqx.Producer[ResumeParsedEvent]

func NewResumeParsedEventProducer(q mq.MQ) (ResumeParsedEventProducer, error) {
	return mqx.NewGeneralProducer[ResumeParsedEvent](q, ResumeParsedEventName)
}
