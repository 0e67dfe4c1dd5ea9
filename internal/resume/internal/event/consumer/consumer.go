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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/careerlens/internal/resume/internal/event"
	"github.com/ecodeclub/careerlens/internal/resume/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type ResumeParsedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewResumeParsedConsumer(svc service.Service, q mq.MQ) (*ResumeParsedConsumer, error) {
	const groupID = "resume_analyze"
	consumer, err := q.Consumer(event.ResumeParsedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ResumeParsedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Consume Analyze 是幂等的，重复消费没有问题
func (c *ResumeParsedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.ResumeParsedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	_, err = c.svc.Analyze(ctx, evt.Uid)
	if err != nil {
		return fmt.Errorf("分析简历失败 uid %d: %w", evt.Uid, err)
	}
	return nil
}

func (c *ResumeParsedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费简历解析事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ResumeParsedConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
