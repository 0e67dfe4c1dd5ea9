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

package ioc

import (
	"time"

	"github.com/ecodeclub/careerlens/internal/email"
	"github.com/ecodeclub/careerlens/internal/email/aliyun"
	"github.com/ecodeclub/careerlens/internal/email/console"
	"github.com/ecodeclub/careerlens/internal/email/failover"
	emailretry "github.com/ecodeclub/careerlens/internal/email/retry"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/econf"
)

// InitEmailService 阿里云发送失败重试几次，最后兜底打印到日志
func InitEmailService() email.Service {
	type Config struct {
		// aliyun 或者 console
		Provider string        `yaml:"provider"`
		Aliyun   aliyun.Config `yaml:"aliyun"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Provider != "aliyun" {
		return console.NewService()
	}
	aliSvc, err := aliyun.NewService(cfg.Aliyun)
	if err != nil {
		panic(err)
	}
	retrySvc := emailretry.NewService(aliSvc, func() retry.Strategy {
		const maxRetries = 3
		strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 5*time.Second, maxRetries)
		if err != nil {
			panic(err)
		}
		return strategy
	})
	return failover.NewService([]email.Service{retrySvc, console.NewService()})
}
