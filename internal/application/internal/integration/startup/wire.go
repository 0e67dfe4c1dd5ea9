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

package startup

import (
	"github.com/ecodeclub/careerlens/internal/application"
	"github.com/ecodeclub/careerlens/internal/application/internal/event"
	"github.com/ecodeclub/careerlens/internal/application/internal/repository"
	"github.com/ecodeclub/careerlens/internal/application/internal/service"
	"github.com/ecodeclub/careerlens/internal/application/internal/web"
	"github.com/ecodeclub/careerlens/internal/job"
	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/ecodeclub/careerlens/internal/pkg/snowflake"
	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	jobSvc job.Service,
	resumeSvc resume.Service,
	matchSvc match.Service,
	userSvc user.UserService,
	sn snowflake.Generator) (*application.Module, error) {
	wire.Build(
		application.InitApplicationDAO,
		repository.NewApplicationRepository,
		event.NewApplicationStatusEventProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(application.Module), "Svc", "Hdl"),
	)
	return new(application.Module), nil
}
