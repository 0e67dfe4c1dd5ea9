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
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/careerlens/internal/search/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const syncGroup = "search_sync"

// SyncConsumer 把职位的变更同步到 ES
type SyncConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewSyncConsumer(svc service.SyncService, q mq.MQ) (*SyncConsumer, error) {
	consumer, err := q.Consumer(JobSyncTopic, syncGroup)
	if err != nil {
		return nil, err
	}
	return &SyncConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("search.SyncConsumer")),
	}, nil
}

func (s *SyncConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			if err := s.Consume(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("同步职位失败", elog.FieldErr(err))
			}
		}
	}()
}

func (s *SyncConsumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt JobSyncEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if err = s.handle(ctx, evt); err != nil {
		return fmt.Errorf("op %s, job %d: %w", evt.Op, evt.Job.Id, err)
	}
	return nil
}

func (s *SyncConsumer) handle(ctx context.Context, evt JobSyncEvent) error {
	switch evt.Op {
	case OpUpsert:
		return s.svc.Upsert(ctx, evt.Job.toDomain())
	case OpDelete:
		return s.svc.Delete(ctx, evt.Job.Id)
	default:
		return errors.New("未知的同步操作")
	}
}

func (s *SyncConsumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}
