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
	"github.com/ecodeclub/careerlens/internal/job"
	"github.com/ecodeclub/careerlens/internal/job/internal/event"
	"github.com/ecodeclub/careerlens/internal/job/internal/repository"
	"github.com/ecodeclub/careerlens/internal/job/internal/repository/cache"
	"github.com/ecodeclub/careerlens/internal/job/internal/service"
	"github.com/ecodeclub/careerlens/internal/job/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, c cache.JobCache, q mq.MQ) (*job.Module, error) {
	wire.Build(
		job.InitJobDAO,
		repository.NewCachedJobRepository,
		event.NewJobSyncEventProducer,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(job.Module), "*"),
	)
	return new(job.Module), nil
}
