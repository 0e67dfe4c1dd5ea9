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

package user

import (
	"sync"
	"time"

	"github.com/ecodeclub/careerlens/internal/user/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var initTableOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	initTableOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitUserDAO(db *egorm.Component) dao.UserDAO {
	InitTableOnce(db)
	return dao.NewGORMUserDAO(db)
}

func initServiceConfig() service.Config {
	type Config struct {
		DefaultPictureURL string `yaml:"defaultPictureURL"`
		FrontendURL       string `yaml:"frontendURL"`
		// 分钟
		ResetTokenTTL int64 `yaml:"resetTokenTTL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("user", &cfg)
	if err != nil {
		panic(err)
	}
	return service.Config{
		DefaultPictureURL: cfg.DefaultPictureURL,
		FrontendURL:       cfg.FrontendURL,
		ResetTokenTTL:     time.Duration(cfg.ResetTokenTTL) * time.Minute,
	}
}
