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

//go:build wireinject

package application

import (
	"github.com/ecodeclub/careerlens/internal/application/internal/event"
	"github.com/ecodeclub/careerlens/internal/application/internal/repository"
	"github.com/ecodeclub/careerlens/internal/application/internal/service"
	"github.com/ecodeclub/careerlens/internal/application/internal/web"
	"github.com/ecodeclub/careerlens/internal/email"
	"github.com/ecodeclub/careerlens/internal/job"
	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/ecodeclub/careerlens/internal/resume"
	smsclient "github.com/ecodeclub/careerlens/internal/sms/client"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	jobModule *job.Module,
	resumeModule *resume.Module,
	matchModule *match.Module,
	userModule *user.Module,
	mailSvc email.Service,
	smsCli smsclient.Client) (*Module, error) {
	wire.Build(
		InitApplicationDAO,
		repository.NewApplicationRepository,
		event.NewApplicationStatusEventProducer,
		InitSnowflake,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*resume.Module), "Svc"),
		wire.FieldsOf(new(*match.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		initStatusNotifyConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
