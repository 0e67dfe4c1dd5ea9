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

package application

import (
	"context"
	"sync"

	"github.com/ecodeclub/careerlens/internal/application/internal/event/consumer"
	"github.com/ecodeclub/careerlens/internal/application/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/email"
	"github.com/ecodeclub/careerlens/internal/pkg/snowflake"
	smsclient "github.com/ecodeclub/careerlens/internal/sms/client"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	InitTableOnce(db)
	return dao.NewGORMApplicationDAO(db)
}

// InitSnowflake 多实例部署的时候每个实例的 snowflake.nodeId 要不同
func InitSnowflake() (snowflake.Generator, error) {
	const apps = 1
	nodeId := econf.GetInt("snowflake.nodeId")
	return snowflake.NewCustomSnowFlake(uint(nodeId), apps)
}

func initNotifyConfig() consumer.Config {
	return consumer.Config{
		SMSTemplateID: econf.GetString("application.notify.smsTemplateId"),
	}
}

func initStatusNotifyConsumer(userSvc user.UserService,
	mailSvc email.Service,
	smsCli smsclient.Client,
	q mq.MQ) (*consumer.StatusNotifyConsumer, error) {
	c, err := consumer.NewStatusNotifyConsumer(userSvc, mailSvc, smsCli, initNotifyConfig(), q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}
