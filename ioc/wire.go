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

package ioc

import (
	"github.com/ecodeclub/careerlens/internal/ai"
	"github.com/ecodeclub/careerlens/internal/application"
	"github.com/ecodeclub/careerlens/internal/cos"
	"github.com/ecodeclub/careerlens/internal/job"
	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/ecodeclub/careerlens/internal/search"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES,
	InitEmailService, InitSMSClient, InitStorage)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		ai.InitModule,
		match.InitModule,
		user.InitModule,
		job.InitModule,
		search.InitModule,
		resume.InitModule,
		application.InitModule,
		cos.InitHandler,
		wire.FieldsOf(new(*ai.Module), "AdminHandler"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*job.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		wire.FieldsOf(new(*application.Module), "Hdl"),
		initCronJobs,
		initGinxServer,
		InitAdminServer,
	)
	return new(App), nil
}
