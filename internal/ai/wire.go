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

package ai

import (
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service"
	"github.com/ecodeclub/careerlens/internal/ai/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	InitConfigDAO,
	InitRecordDAO,
	cache.NewConfigECache,
	repository.NewCachedConfigRepository,
	repository.NewLLMLogRepo,
	InitCommonHandlers,
	InitLLMService,
	service.NewConfigService,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(ProviderSet, InitPlatform)
	return new(Module), nil
}

// InitModuleWithPlatform 测试和离线工具用，可以替换掉真实的平台
func InitModuleWithPlatform(db *egorm.Component, ec ecache.Cache, platform Platform) (*Module, error) {
	wire.Build(ProviderSet)
	return new(Module), nil
}
