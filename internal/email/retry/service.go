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

package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/careerlens/internal/email"
	"github.com/ecodeclub/ekit/retry"
)

var ErrOverRetryTimes = errors.New("超过最大重试次数")

var _ email.Service = (*Service)(nil)

type Service struct {
	svc email.Service
	// 每次发送都需要一个新的策略
	strategyFunc func() retry.Strategy
}

func NewService(svc email.Service, fac func() retry.Strategy) *Service {
	return &Service{
		svc:          svc,
		strategyFunc: fac,
	}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	strategy := s.strategyFunc()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		err := s.svc.SendMail(ctx, mail)
		if err == nil {
			return nil
		}
		// 超时、被取消或者邮件本身不合法，就没必要再重试了
		if errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, context.Canceled) ||
			errors.Is(err, email.ErrInvalidMail) {
			return err
		}
		interval, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: %w", ErrOverRetryTimes, err)
		}
		if timer == nil {
			timer = time.NewTimer(interval)
		} else {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
