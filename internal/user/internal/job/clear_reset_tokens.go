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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/careerlens/internal/user/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ClearExpiredResetTokensJob)(nil)

type ClearExpiredResetTokensJob struct {
	svc    service.UserService
	logger *elog.Component
}

func NewClearExpiredResetTokensJob(svc service.UserService) *ClearExpiredResetTokensJob {
	return &ClearExpiredResetTokensJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *ClearExpiredResetTokensJob) Name() string {
	return "ClearExpiredResetTokensJob"
}

func (c *ClearExpiredResetTokensJob) Run(ctx context.Context) error {
	cnt, err := c.svc.ClearExpiredResetTokens(ctx)
	if err != nil {
		return fmt.Errorf("清理过期的重置令牌失败: %w", err)
	}
	c.logger.Debug("清理过期的重置令牌", elog.Int64("cnt", cnt))
	return nil
}
