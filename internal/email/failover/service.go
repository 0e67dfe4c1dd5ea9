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

package failover

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ecodeclub/careerlens/internal/email"
	"github.com/gotomicro/ego/core/elog"
)

var ErrAllFailed = errors.New("所有邮件服务都失败")

var _ email.Service = (*Service)(nil)

// Service 轮流挑选起点，失败了就换下一个
type Service struct {
	svcs   []email.Service
	idx    uint64
	logger *elog.Component
}

func NewService(svcs []email.Service) *Service {
	return &Service{
		svcs:   svcs,
		logger: elog.DefaultLogger,
	}
}

func (f *Service) SendMail(ctx context.Context, mail email.Mail) error {
	idx := atomic.AddUint64(&f.idx, 1)
	length := uint64(len(f.svcs))
	for i := idx; i < idx+length; i++ {
		err := f.svcs[i%length].SendMail(ctx, mail)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, context.DeadlineExceeded),
			errors.Is(err, context.Canceled),
			errors.Is(err, email.ErrInvalidMail):
			return err
		default:
			f.logger.Warn("发送邮件失败", elog.String("to", mail.To), elog.FieldErr(err))
		}
	}
	return ErrAllFailed
}
