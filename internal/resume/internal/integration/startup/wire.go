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
	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/ecodeclub/careerlens/internal/resume/internal/event"
	"github.com/ecodeclub/careerlens/internal/resume/internal/repository"
	"github.com/ecodeclub/careerlens/internal/resume/internal/service"
	"github.com/ecodeclub/careerlens/internal/resume/internal/web"
	"github.com/ecodeclub/careerlens/internal/storage"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

// InitModule 不启动消费者，由测试自己控制
func InitModule(db *egorm.Component, q mq.MQ, st storage.Storage, llm ai.LLMService) (*resume.Module, error) {
	wire.Build(
		resume.InitResumeDAO,
		repository.NewResumeRepository,
		event.NewResumeParsedEventProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(resume.Module), "Svc", "Hdl"),
	)
	return new(resume.Module), nil
}
