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

package dao

import (
	"time"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&LLMRecord{},
		&BizConfig{},
	)
	if err != nil {
		return err
	}
	return seedConfigs(db)
}

// seedConfigs 已经存在的配置不会被覆盖，管理员改过的以数据库为准
func seedConfigs(db *egorm.Component) error {
	now := time.Now().UnixMilli()
	cfgs := slice.Map(domain.DefaultConfigs(), func(idx int, src domain.BizConfig) BizConfig {
		return BizConfig{
			Biz:            src.Biz,
			MaxInput:       src.MaxInput,
			Model:          src.Model,
			Price:          src.Price,
			Temperature:    src.Temperature,
			TopP:           src.TopP,
			SystemPrompt:   src.SystemPrompt,
			PromptTemplate: src.PromptTemplate,
			Ctime:          now,
			Utime:          now,
		}
	})
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "biz"}},
		DoNothing: true,
	}).Create(&cfgs).Error
}
