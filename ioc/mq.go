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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// defaultTopics 配置里面没有写的时候用这些，分区数影响消费的并发度
var defaultTopics = []topicConfig{
	{Name: "job_sync_events", Partitions: 3},
	{Name: "resume_parsed_events", Partitions: 3},
	{Name: "application_status_events", Partitions: 3},
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}
	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	topics := cfg.Topics
	if len(topics) == 0 {
		topics = defaultTopics
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err = createTopics(ctx, q, topics); err != nil {
		panic(err)
	}
	return q
}

func createTopics(ctx context.Context, q mq.MQ, topics []topicConfig) error {
	for _, t := range topics {
		partitions := t.Partitions
		if partitions <= 0 {
			partitions = 1
		}
		if err := q.CreateTopic(ctx, t.Name, partitions); err != nil {
			return fmt.Errorf("创建 topic 失败 %s, partitions = %d: %w", t.Name, partitions, err)
		}
		elog.DefaultLogger.Info("创建 topic", elog.String("topic", t.Name), elog.Int("partitions", partitions))
	}
	return nil
}
