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
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	if err := WaitForDBSetup(econf.GetString("mysql.dsn")); err != nil {
		panic(err)
	}
	return egorm.Load("mysql").Build()
}

// WaitForDBSetup docker compose 里面 MySQL 往往比应用启动得慢
func WaitForDBSetup(dsn string) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, maxRetries)
	if err != nil {
		return err
	}
	return waitFor(func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	}, strategy)
}

func waitFor(ping func(ctx context.Context) error, strategy retry.Strategy) error {
	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err := ping(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待依赖的服务启动超过最大重试次数: %w", err)
		}
		elog.DefaultLogger.Warn("依赖的服务还没有准备好", elog.FieldErr(err), elog.String("next", next.String()))
		time.Sleep(next)
	}
}
