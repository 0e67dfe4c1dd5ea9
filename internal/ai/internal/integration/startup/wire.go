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
	"github.com/ecodeclub/careerlens/internal/ai"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service"
	"github.com/ecodeclub/careerlens/internal/ai/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	c cache.ConfigCache,
	platform ai.Platform) (*ai.Module, error) {
	wire.Build(
		ai.InitConfigDAO,
		ai.InitRecordDAO,
		repository.NewCachedConfigRepository,
		repository.NewLLMLogRepo,
		ai.InitCommonHandlers,
		ai.InitLLMService,
		service.NewConfigService,
		web.NewAdminHandler,
		wire.Struct(new(ai.Module), "*"),
	)
	return new(ai.Module), nil
}
