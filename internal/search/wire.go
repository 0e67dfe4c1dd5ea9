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

package search

import (
	"github.com/ecodeclub/careerlens/internal/search/internal/repository"
	"github.com/ecodeclub/careerlens/internal/search/internal/service"
	"github.com/ecodeclub/careerlens/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

func InitModule(es *elastic.Client, q mq.MQ) (*Module, error) {
	wire.Build(
		InitJobDAO,
		repository.NewJobRepository,
		service.NewSearchSvc,
		service.NewSyncSvc,
		web.NewHandler,
		initSyncConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
