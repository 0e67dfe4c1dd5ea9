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

package resume

import (
	"context"
	"sync"

	"github.com/ecodeclub/careerlens/internal/resume/internal/event/consumer"
	"github.com/ecodeclub/careerlens/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/resume/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitResumeDAO(db *egorm.Component) dao.ResumeDAO {
	initTableOnce(db)
	return dao.NewGORMResumeDAO(db)
}

func initResumeParsedConsumer(svc service.Service, q mq.MQ) (*consumer.ResumeParsedConsumer, error) {
	c, err := consumer.NewResumeParsedConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}
