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

package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// topics 测试里面一个分区就够了，消息有序
var topics = []string{
	"job_sync_events",
	"resume_parsed_events",
	"application_status_events",
}

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 所有测试共享同一个内存 MQ
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		q = NewMQ()
	})
	return q
}

// NewMQ 需要隔离的测试用这个，不会读到别的测试发的消息
func NewMQ() mq.MQ {
	res := memory.NewMQ()
	for _, topic := range topics {
		if err := res.CreateTopic(context.Background(), topic, 1); err != nil {
			panic(err)
		}
	}
	return res
}
