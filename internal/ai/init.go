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

package ai

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecodeclub/careerlens/internal/ai/internal/repository"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/metrics"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitConfigDAO(db *egorm.Component) dao.ConfigDAO {
	InitTableOnce(db)
	return dao.NewGORMConfigDAO(db)
}

func InitRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}

// InitCommonHandlers 顺序就是调用顺序
func InitCommonHandlers(repo repository.ConfigRepository, logRepo repository.LLMLogRepo) []handler.Builder {
	return []handler.Builder{
		log.NewHandler(),
		metrics.NewHandler("careerlens"),
		config.NewBuilder(repo),
		record.NewHandler(logRepo),
	}
}

func InitLLMService(common []handler.Builder, platform handler.Handler) llm.Service {
	return llm.NewLLMService(handler.NewCompositionHandler(platform, common...))
}

// InitPlatform 根据 ai.platform 选择具体的大模型平台
func InitPlatform() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		BaseURL  string `yaml:"baseURL"`
		APIKey   string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "", "openai":
		return openai.NewHandler(cfg.BaseURL, cfg.APIKey)
	case "zhipu":
		hdl, err := zhipu.NewHandler(cfg.BaseURL, cfg.APIKey)
		if err != nil {
			panic(err)
		}
		return hdl
	case "gemini":
		hdl, err := gemini.NewHandler(context.Background(), cfg.APIKey)
		if err != nil {
			panic(err)
		}
		return hdl
	default:
		panic(fmt.Errorf("未知的大模型平台 %s", cfg.Platform))
	}
}
