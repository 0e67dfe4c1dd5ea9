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

package search

import (
	"context"
	"sync"

	"github.com/ecodeclub/careerlens/internal/search/internal/event"
	"github.com/ecodeclub/careerlens/internal/search/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/search/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/olivere/elastic/v7"
)

var indexOnce = sync.Once{}

func InitIndexOnce(client *elastic.Client) {
	indexOnce.Do(func() {
		err := dao.InitES(client)
		if err != nil {
			panic(err)
		}
	})
}

func InitJobDAO(client *elastic.Client) dao.JobDAO {
	InitIndexOnce(client)
	return dao.NewJobElasticDAO(client)
}

func initSyncConsumer(svc service.SyncService, q mq.MQ) (*event.SyncConsumer, error) {
	c, err := event.NewSyncConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}
